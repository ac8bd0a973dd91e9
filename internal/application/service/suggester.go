package service

import "context"

type Suggestion struct {
	ImprovedContent string   `json:"improved_content"`
	Suggestions     []string `json:"suggestions"`
}

// Suggester is the content-improvement collaborator used by the about and
// project forms. Fire-and-forget from the caller's perspective: no retries.
type Suggester interface {
	SuggestImprovements(ctx context.Context, contentType, content string) (*Suggestion, error)
}
