package profile

import (
	"context"
	"time"
)

// Profile is the singleton describing the site owner. It is created once by
// the seed path and only ever mutated afterwards, never deleted.
type Profile struct {
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Title     string    `json:"title"`
	About     string    `json:"about"`
	CVUrl     string    `json:"cv_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	// Get returns apperror.ErrNotFound when the backend has never been
	// seeded. Callers use that as the "unseeded" signal.
	Get(ctx context.Context) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
