package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Contact is the only entity created by public visitors. New submissions are
// kept most-recent-first, so the contacts collection prepends where every
// other collection appends.
type Contact struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Message  string    `json:"message"`
	Received string    `json:"received"`
	Read     bool      `json:"read"`
}

// New stamps a fresh submission. Received is an RFC3339 UTC string.
func New(name, email, message string) Contact {
	return Contact{
		Name:     name,
		Email:    email,
		Message:  message,
		Received: time.Now().UTC().Format(time.RFC3339),
		Read:     false,
	}
}

type Repository interface {
	Insert(ctx context.Context, c Contact) error
	Update(ctx context.Context, c Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns contacts most-recent-first.
	List(ctx context.Context) ([]Contact, error)
}
