package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanketgaikwad/portfolio-api/internal/application/service"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

type fakeSuggester struct {
	lastContentType string
	lastContent     string
	result          *service.Suggestion
	err             error
}

func (f *fakeSuggester) SuggestImprovements(_ context.Context, contentType, content string) (*service.Suggestion, error) {
	f.lastContentType = contentType
	f.lastContent = content
	return f.result, f.err
}

func TestSuggestContent_Success(t *testing.T) {
	fake := &fakeSuggester{result: &service.Suggestion{
		ImprovedContent: "Better text.",
		Suggestions:     []string{"shorten the intro"},
	}}
	uc := NewSuggestContentUseCase(fake, logger.NewNop())

	out, err := uc.Execute(context.Background(), SuggestContentInput{
		ContentType: "About",
		Content:     "my original text",
	})
	require.NoError(t, err)
	assert.Equal(t, "Better text.", out.ImprovedContent)
	assert.Equal(t, []string{"shorten the intro"}, out.Suggestions)
	assert.Equal(t, "about", fake.lastContentType)
}

func TestSuggestContent_RejectsUnknownType(t *testing.T) {
	uc := NewSuggestContentUseCase(&fakeSuggester{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), SuggestContentInput{
		ContentType: "resume",
		Content:     "text",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSuggestContent_RejectsEmptyContent(t *testing.T) {
	uc := NewSuggestContentUseCase(&fakeSuggester{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), SuggestContentInput{
		ContentType: "project",
		Content:     "   ",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSuggestContent_WrapsUpstreamError(t *testing.T) {
	uc := NewSuggestContentUseCase(&fakeSuggester{err: errors.New("model offline")}, logger.NewNop())

	_, err := uc.Execute(context.Background(), SuggestContentInput{
		ContentType: "about",
		Content:     "text",
	})
	assert.ErrorIs(t, err, apperror.ErrInternal)
}
