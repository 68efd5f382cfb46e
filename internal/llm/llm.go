// Package llm wraps the hosted generative model APIs behind a single-prompt call.
package llm

import (
	"context"
	"fmt"

	"github.com/set-night/healthdash/internal/config"
)

// Generator turns one prompt into one text completion.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the generator selected by cfg.LLMProvider.
func New(cfg *config.Config) (Generator, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case config.ProviderOpenRouter:
		return NewOpenRouter(cfg.OpenRouterKey, cfg.OpenRouterModel), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.LLMProvider)
	}
}
