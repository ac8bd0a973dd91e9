package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/google/uuid"

	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
)

// CredentialVerifier decides whether an email/password pair belongs to the
// site owner. The login use case only depends on this interface, so the
// static single-admin check can later be swapped for a real identity
// provider without touching call sites.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (uuid.UUID, error)
}

// StaticVerifier checks against a single configured admin credential pair.
// The email comparison is case-insensitive, the password comparison is
// constant-time. The admin id is derived from the email so issued tokens
// stay valid across restarts.
type StaticVerifier struct {
	adminEmail    string
	adminPassword string
	adminID       uuid.UUID
}

func NewStaticVerifier(email, password string) *StaticVerifier {
	return &StaticVerifier{
		adminEmail:    email,
		adminPassword: password,
		adminID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(email))),
	}
}

func (v *StaticVerifier) Verify(_ context.Context, email, password string) (uuid.UUID, error) {
	emailOK := strings.EqualFold(email, v.adminEmail)
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.adminPassword)) == 1
	if !emailOK || !passwordOK {
		return uuid.Nil, apperror.NewUnauthorized("email or password is incorrect", nil)
	}
	return v.adminID, nil
}
