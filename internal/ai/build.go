package ai

import (
	"context"
	"fmt"

	"voicebrief/internal/config"
)

// BuildRegistry registers every engine that has an API key configured.
func BuildRegistry(ctx context.Context, cfg config.AIConfig) (*Registry, error) {
	engines := NewRegistry(cfg.DefaultEngine)

	if cfg.GeminiAPIKey != "" {
		gemini, err := NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiPrimaryModel, cfg.GeminiFallbackModel)
		if err != nil {
			return nil, err
		}
		engines.Register(gemini)
	}
	if cfg.GroqAPIKey != "" {
		engines.Register(NewGroq(cfg.GroqAPIKey))
	}

	if engines.Len() == 0 {
		return nil, fmt.Errorf("no API keys configured, set GEMINI_API_KEY or GROQ_API_KEY")
	}
	return engines, nil
}
