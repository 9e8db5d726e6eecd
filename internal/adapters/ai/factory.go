package ai

import (
	"context"

	"google.golang.org/adk/model"

	"citypulse/internal/adapters/config"
)

// BuildRegistry registers every provider the configuration can drive.
func BuildRegistry(cfg config.ModelConfig) (*Registry, error) {
	registry := NewRegistry()

	gemini := NewGeminiProvider(GeminiConfig{
		APIKey:        cfg.GoogleAPIKey,
		UseVertexAI:   cfg.UseVertexAI,
		VertexProject: cfg.VertexProject,
		VertexRegion:  cfg.VertexRegion,
	})
	if err := registry.Register(gemini); err != nil {
		return nil, err
	}

	if err := registry.Register(NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)); err != nil {
		return nil, err
	}

	return registry, nil
}

// NewModel builds the configured model via the matching provider.
func NewModel(ctx context.Context, cfg config.ModelConfig) (model.LLM, error) {
	registry, err := BuildRegistry(cfg)
	if err != nil {
		return nil, err
	}

	provider, err := registry.Get(cfg.Provider)
	if err != nil {
		return nil, err
	}

	return provider.NewModel(ctx, cfg.Name)
}
