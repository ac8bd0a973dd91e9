package internship

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Internship struct {
	ID             uuid.UUID `json:"id"`
	Company        string    `json:"company"`
	Role           string    `json:"role"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Memories       string    `json:"memories"`
	Images         []string  `json:"images"`
	CertificateURL *string   `json:"certificate_url,omitempty"`
	ReportURL      *string   `json:"report_url,omitempty"`
}

var ErrNoImages = errors.New("internship requires at least one image")

func (i *Internship) Validate() error {
	if len(i.Images) == 0 {
		return ErrNoImages
	}
	return nil
}

type Repository interface {
	Insert(ctx context.Context, i Internship) error
	Update(ctx context.Context, i Internship) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Internship, error)
}
