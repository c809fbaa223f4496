package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pageza/gemini-micro-service/backend/config"
)

// NewTextGenerator builds the language model client selected by cfg.LLMProvider.
// The returned close function releases any held connection.
func NewTextGenerator(ctx context.Context, cfg *config.Config) (TextGenerator, func() error, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		gemini, err := NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		return gemini, gemini.Close, nil
	case config.ProviderDeepSeek:
		deepseek := NewDeepSeekService(cfg.DeepSeekAPIKey, cfg.DeepSeekAPIURL, cfg.DeepSeekModel, &http.Client{})
		return deepseek, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
