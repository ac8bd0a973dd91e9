package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sanketgaikwad/portfolio-api/internal/domain/user"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/auth"
)

// RepoVerifier checks credentials against the users table with bcrypt. It is
// the drop-in replacement for the static single-admin verifier once an owner
// row has been seeded.
type RepoVerifier struct {
	users user.Repository
}

func NewRepoVerifier(users user.Repository) *RepoVerifier {
	return &RepoVerifier{users: users}
}

func (v *RepoVerifier) Verify(ctx context.Context, email, password string) (uuid.UUID, error) {
	u, err := v.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrUnauthorized) {
			return uuid.Nil, err
		}
		return uuid.Nil, apperror.NewInternal("credential lookup failed", err)
	}
	if !auth.CheckPasswordHash(password, u.PasswordHash) {
		return uuid.Nil, apperror.NewUnauthorized("email or password is incorrect", nil)
	}
	return u.ID, nil
}
