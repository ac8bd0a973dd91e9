package education

import (
	"context"

	"github.com/google/uuid"
)

type Education struct {
	ID     uuid.UUID `json:"id"`
	School string    `json:"school"`
	Degree string    `json:"degree"`
	Period string    `json:"period"`
}

type Repository interface {
	Insert(ctx context.Context, e Education) error
	Update(ctx context.Context, e Education) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Education, error)
}
