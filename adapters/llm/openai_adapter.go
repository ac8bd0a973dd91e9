package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/sanketgaikwad/portfolio-api/internal/application/service"
	"github.com/sanketgaikwad/portfolio-api/internal/config"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

type openAISuggesterAdapter struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

// NewOpenAISuggesterAdapter talks to any OpenAI-compatible endpoint (a local
// Ollama instance works with a dummy key).
func NewOpenAISuggesterAdapter(cfg config.Config, log logger.Logger) (service.Suggester, error) {
	if cfg.Suggest.BaseURL == "" {
		return nil, fmt.Errorf("suggest base_url is not configured")
	}

	apiKey := cfg.Suggest.APIKey
	if apiKey == "" {
		apiKey = "dummy-key"
	}
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = cfg.Suggest.BaseURL

	client := openai.NewClientWithConfig(clientConfig)

	log.Info("Content suggestion (LLM) adapter initialized")
	return &openAISuggesterAdapter{client: client, model: cfg.Suggest.Model, log: log}, nil
}

func (a *openAISuggesterAdapter) SuggestImprovements(ctx context.Context, contentType, content string) (*service.Suggestion, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(contentType, content),
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("suggestion completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("suggestion endpoint returned no choices")
	}

	return parseSuggestion(resp.Choices[0].Message.Content), nil
}

func buildPrompt(contentType, content string) string {
	var b strings.Builder
	b.WriteString("You improve content for a personal portfolio website.\n")
	b.WriteString("Respond with a JSON object containing two keys: ")
	b.WriteString(`"improved_content" (string) and "suggestions" (array of strings describing each change).`)
	b.WriteString("\n\nContent Type: ")
	b.WriteString(contentType)
	b.WriteString("\nCurrent Content:\n")
	b.WriteString(content)
	return b.String()
}

// parseSuggestion tolerates models that wrap JSON in prose or fences and
// falls back to using the raw reply as the improved content.
func parseSuggestion(reply string) *service.Suggestion {
	trimmed := strings.TrimSpace(reply)
	if start := strings.Index(trimmed, "{"); start >= 0 {
		if end := strings.LastIndex(trimmed, "}"); end > start {
			var s service.Suggestion
			if err := json.Unmarshal([]byte(trimmed[start:end+1]), &s); err == nil && s.ImprovedContent != "" {
				if s.Suggestions == nil {
					s.Suggestions = []string{}
				}
				return &s
			}
		}
	}
	return &service.Suggestion{ImprovedContent: trimmed, Suggestions: []string{}}
}
