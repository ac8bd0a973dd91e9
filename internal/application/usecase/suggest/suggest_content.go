package suggest

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sanketgaikwad/portfolio-api/internal/application/service"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

var allowedContentTypes = map[string]bool{
	"about":   true,
	"project": true,
}

type SuggestContentUseCase struct {
	suggester service.Suggester
	logger    logger.Logger
}

func NewSuggestContentUseCase(s service.Suggester, log logger.Logger) *SuggestContentUseCase {
	return &SuggestContentUseCase{suggester: s, logger: log}
}

type SuggestContentInput struct {
	ContentType string
	Content     string
}

type SuggestContentOutput struct {
	ImprovedContent string   `json:"improvedContent"`
	Suggestions     []string `json:"suggestions"`
}

func (uc *SuggestContentUseCase) Execute(ctx context.Context, input SuggestContentInput) (*SuggestContentOutput, error) {
	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if !allowedContentTypes[contentType] {
		return nil, apperror.NewInvalidInput("contentType must be 'about' or 'project'", nil)
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperror.NewInvalidInput("content must not be empty", nil)
	}

	suggestion, err := uc.suggester.SuggestImprovements(ctx, contentType, input.Content)
	if err != nil {
		uc.logger.Error("Content suggestion failed", err, zap.String("content_type", contentType))
		return nil, apperror.NewInternal("failed to generate suggestions", err)
	}

	return &SuggestContentOutput{
		ImprovedContent: suggestion.ImprovedContent,
		Suggestions:     suggestion.Suggestions,
	}, nil
}
