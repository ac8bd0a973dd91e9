package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSuggestion_CleanJSON(t *testing.T) {
	reply := `{"improved_content": "Better about text.", "suggestions": ["tightened wording"]}`
	s := parseSuggestion(reply)
	assert.Equal(t, "Better about text.", s.ImprovedContent)
	assert.Equal(t, []string{"tightened wording"}, s.Suggestions)
}

func TestParseSuggestion_FencedJSON(t *testing.T) {
	reply := "Sure, here you go:\n```json\n{\"improved_content\": \"Polished.\", \"suggestions\": [\"fixed grammar\", \"added detail\"]}\n```\nHope that helps!"
	s := parseSuggestion(reply)
	assert.Equal(t, "Polished.", s.ImprovedContent)
	assert.Len(t, s.Suggestions, 2)
}

func TestParseSuggestion_PlainTextFallback(t *testing.T) {
	reply := "  Just a rewritten paragraph with no JSON at all. "
	s := parseSuggestion(reply)
	assert.Equal(t, "Just a rewritten paragraph with no JSON at all.", s.ImprovedContent)
	assert.Empty(t, s.Suggestions)
	assert.NotNil(t, s.Suggestions)
}

func TestParseSuggestion_MalformedJSONFallsBack(t *testing.T) {
	reply := `{"improved_content": truncated`
	s := parseSuggestion(reply)
	assert.Equal(t, reply, s.ImprovedContent)
}
