package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citypulse/internal/adapters/config"
	"citypulse/pkg/errors"
)

func TestBuildRegistry(t *testing.T) {
	registry, err := BuildRegistry(config.ModelConfig{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{ProviderGemini, ProviderOpenAI}, registry.List())
}

func TestRegistryGetUnknown(t *testing.T) {
	registry, err := BuildRegistry(config.ModelConfig{})
	require.NoError(t, err)

	_, err = registry.Get("anthropic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrProviderUnknown))
}

func TestRegisterDuplicate(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewOpenAIProvider("key", "")))
	assert.Error(t, registry.Register(NewOpenAIProvider("key", "")))
}

func TestNewModelRequiresCredentials(t *testing.T) {
	t.Run("gemini without key", func(t *testing.T) {
		_, err := NewModel(context.Background(), config.ModelConfig{
			Provider: ProviderGemini,
			Name:     "gemini-2.5-flash",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrProviderNotConfigured))
	})

	t.Run("openai without key", func(t *testing.T) {
		_, err := NewModel(context.Background(), config.ModelConfig{
			Provider: ProviderOpenAI,
			Name:     "gpt-4o-mini",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrProviderNotConfigured))
	})
}

func TestOpenAIModelName(t *testing.T) {
	provider := NewOpenAIProvider("test-key", "http://localhost:8000/v1")
	m, err := provider.NewModel(context.Background(), "gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", m.Name())
}
