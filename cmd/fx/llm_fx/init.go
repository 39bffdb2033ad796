package llm_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"yatra/pkg/utils"
)

var Module = fx.Provide(ProvideGenerationClient)

// GenerationConfig holds configuration for generation clients
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerationClient creates a generation client based on environment variables
func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s generation client with model: %s", config.Provider, config.Model)

	return utils.NewGenerationClient(config.Provider, config.APIKey, config.Model)
}

// getGenerationConfig reads configuration from environment variables
func getGenerationConfig() GenerationConfig {
	provider := getEnvWithDefault("GENERATION_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
