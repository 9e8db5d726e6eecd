package ai

import (
	"context"

	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"

	"citypulse/pkg/errors"
)

// GeminiProvider builds models backed by the Gemini API, either via the
// developer API key or Vertex AI.
type GeminiProvider struct {
	apiKey        string
	useVertexAI   bool
	vertexProject string
	vertexRegion  string
}

// GeminiConfig holds backend selection for the Gemini provider.
type GeminiConfig struct {
	APIKey        string
	UseVertexAI   bool
	VertexProject string
	VertexRegion  string
}

// NewGeminiProvider creates a Gemini provider.
func NewGeminiProvider(cfg GeminiConfig) *GeminiProvider {
	return &GeminiProvider{
		apiKey:        cfg.APIKey,
		useVertexAI:   cfg.UseVertexAI,
		vertexProject: cfg.VertexProject,
		vertexRegion:  cfg.VertexRegion,
	}
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string { return ProviderGemini }

// SupportsStreaming indicates streaming support.
func (p *GeminiProvider) SupportsStreaming() bool { return true }

// NewModel builds a Gemini model handle.
func (p *GeminiProvider) NewModel(ctx context.Context, modelName string) (model.LLM, error) {
	clientConfig := &genai.ClientConfig{}

	if p.useVertexAI {
		if p.vertexProject == "" {
			return nil, errors.Wrap(errors.ErrProviderNotConfigured,
				"vertex backend requires a project")
		}
		clientConfig.Backend = genai.BackendVertexAI
		clientConfig.Project = p.vertexProject
		clientConfig.Location = p.vertexRegion
	} else {
		if p.apiKey == "" {
			return nil, errors.Wrap(errors.ErrProviderNotConfigured,
				"gemini provider requires GOOGLE_API_KEY")
		}
		clientConfig.APIKey = p.apiKey
	}

	m, err := gemini.NewModel(ctx, modelName, clientConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "create gemini model %s", modelName)
	}

	return m, nil
}
