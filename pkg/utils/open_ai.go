package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAITextClient implements TextGenerator with the chat completions API.
type OpenAITextClient struct {
	client *openai.Client
	model  string
}

func NewOpenAITextClient(apiKey, model string) *OpenAITextClient {
	return NewOpenAITextClientWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewOpenAITextClientWithConfig allows a custom base URL or HTTP client,
// e.g. for OpenAI-compatible gateways.
func NewOpenAITextClientWithConfig(config openai.ClientConfig, model string) *OpenAITextClient {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAITextClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenAITextClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a travel planner that answers with JSON only."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAITextClient) Close() error { return nil }
