package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenerationClientInterface is the single contract the wizard has with a
// generative-text backend: one prompt in, raw text out. Structure recovery
// is the caller's problem; retries, if any, belong to the backend.
type GenerationClientInterface interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerationClient implements GenerationClientInterface on Google's
// Gemini models.
type GeminiGenerationClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerationClient(apiKey, model string) (GenerationClientInterface, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiGenerationClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	model := c.client.GenerativeModel(c.model)
	// Low temperature keeps the schema-shaped output stable; the JSON MIME
	// hint reduces markdown fencing but callers must not rely on it.
	model.SetTemperature(0.1)
	model.SetTopP(0.5)
	model.SetTopK(20)
	model.SetMaxOutputTokens(8000)
	model.ResponseMIMEType = "application/json"

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}

// NewGenerationClient creates a Gemini or OpenAI backed client based on config.
func NewGenerationClient(provider, apiKey, model string) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model), nil
	case "gemini":
		return NewGeminiGenerationClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
