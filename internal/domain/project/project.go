package project

import (
	"context"

	"github.com/google/uuid"
)

// Project covers both finished and ongoing work. The two live in separate
// collections on the site but share one shape, so a single flag separates
// them here.
type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	Link         string    `json:"link"`
	Introduction string    `json:"introduction"`
	Technologies []string  `json:"technologies"`
	Features     []string  `json:"features"`
	ReportURL    *string   `json:"report_url,omitempty"`
	Ongoing      bool      `json:"-"`
}

type Repository interface {
	Insert(ctx context.Context, p Project) error
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, ongoing bool) ([]Project, error)
}
