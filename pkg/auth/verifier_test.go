package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
)

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier("Admin@Example.com", "s3cret")
	ctx := context.Background()

	t.Run("correct credentials", func(t *testing.T) {
		id, err := v.Verify(ctx, "admin@example.com", "s3cret")
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("email match is case insensitive", func(t *testing.T) {
		id1, err := v.Verify(ctx, "ADMIN@EXAMPLE.COM", "s3cret")
		assert.NoError(t, err)
		id2, err := v.Verify(ctx, "admin@example.com", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, id1, id2)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := v.Verify(ctx, "admin@example.com", "wrong")
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("wrong email", func(t *testing.T) {
		_, err := v.Verify(ctx, "someone@else.com", "s3cret")
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("my-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "my-password", hash)

	assert.True(t, CheckPasswordHash("my-password", hash))
	assert.False(t, CheckPasswordHash("other-password", hash))
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	adminID := uuid.New()

	token, err := svc.GenerateToken(adminID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
}

func TestJWTService_RejectsTampered(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	other := NewJWTService("other-secret", time.Hour)

	token, err := other.GenerateToken(uuid.New())
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
