package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerationClient implements GenerationClientInterface on OpenAI
// chat completions.
type OpenAIGenerationClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerationClient(apiKey, model string) GenerationClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerationClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIGenerationClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
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
