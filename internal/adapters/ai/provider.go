// Package ai selects and constructs the LLM backend the agents run on.
package ai

import (
	"context"
	"sync"

	"google.golang.org/adk/model"

	"citypulse/pkg/errors"
)

// Provider names accepted by MODEL_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Provider constructs framework models for a single backend.
type Provider interface {
	Name() string

	// NewModel builds an LLM handle for the given model identifier.
	NewModel(ctx context.Context, modelName string) (model.LLM, error)

	// SupportsStreaming indicates whether the backend can stream responses.
	SupportsStreaming() bool
}

// Registry stores available providers by name.
type Registry struct {
	providers map[string]Provider
	mu        sync.RWMutex
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register adds a provider to the registry.
func (r *Registry) Register(provider Provider) error {
	if provider == nil {
		return errors.Wrap(errors.ErrInvalidInput, "provider is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := provider.Name()
	if _, exists := r.providers[name]; exists {
		return errors.Wrapf(errors.ErrInvalidInput, "provider %s already registered", name)
	}

	r.providers[name] = provider
	return nil
}

// Get returns the provider by name.
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrProviderUnknown, "%s", name)
	}

	return provider, nil
}

// List returns the names of all registered providers.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}

	return names
}
