package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiTextClient implements TextGenerator using Google's Gemini models
type GeminiTextClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiTextClient creates a new Gemini client
func NewGeminiTextClient(apiKey, model string) (*GeminiTextClient, error) {
	if model == "" {
		model = defaultGeminiModel // Free tier model
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{
		client:  client,
		model:   model,
		timeout: 60 * time.Second,
	}, nil
}

// GenerateText sends the prompt as a single user turn and returns the
// concatenated text parts of the first candidate.
func (c *GeminiTextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SetTopP(0.9)
	m.SetTopK(40)
	m.SetMaxOutputTokens(8192)

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := m.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text parts")
	}

	return out.String(), nil
}

// Close closes the Gemini client
func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}
