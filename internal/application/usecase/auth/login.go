package auth

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/auth"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

type LoginUseCase struct {
	verifier auth.CredentialVerifier
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewLoginUseCase(verifier auth.CredentialVerifier, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		verifier: verifier,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	adminID, err := uc.verifier.Verify(ctx, input.Email, input.Password)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(adminID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("admin_id", adminID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("admin_id", adminID.String()))
	return &LoginOutput{AccessToken: token}, nil
}
