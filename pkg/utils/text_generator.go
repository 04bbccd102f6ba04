package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextGenerator is the generative text service: a prompt goes in, free-form
// text comes out.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewTextGenerator Factory function to create either OpenAI or Gemini client based on config
func NewTextGenerator(provider, apiKey, model string) (TextGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required for provider %q", provider)
	}

	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextClient(apiKey, model), nil
	case "gemini", "":
		return NewGeminiTextClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
