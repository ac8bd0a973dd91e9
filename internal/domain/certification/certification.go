package certification

import (
	"context"

	"github.com/google/uuid"
)

type Certification struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Issuer   string    `json:"issuer"`
	Date     string    `json:"date"`
	ImageURL string    `json:"image_url"`
}

type Repository interface {
	Insert(ctx context.Context, c Certification) error
	Update(ctx context.Context, c Certification) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Certification, error)
}
