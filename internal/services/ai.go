package services

import (
	"context"
	"fmt"

	"lead-scoring-backend/internal/config"
)

// AIClient is the capability the classifier depends on: send a prompt, get
// text back. Implementations wrap a concrete provider SDK.
type AIClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NewAIClient builds the provider selected by AI_PROVIDER. A configured
// provider with a missing credential is a startup error, not a silent
// degrade.
func NewAIClient(cfg config.AIConfig) (AIClient, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("AI_PROVIDER is gemini but GEMINI_API_KEY is not set")
		}
		return NewGeminiClient(cfg.GeminiAPIKey)
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("AI_PROVIDER is anthropic but ANTHROPIC_API_KEY is not set")
		}
		return NewAnthropicClient(cfg.AnthropicAPIKey), nil
	default:
		return nil, fmt.Errorf("unsupported AI_PROVIDER: %q (use 'gemini' or 'anthropic')", cfg.Provider)
	}
}
