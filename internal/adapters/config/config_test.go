package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citypulse/pkg/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "citypulse", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 9091, cfg.Server.OpsPort)
	assert.Equal(t, "city_concierge", cfg.Agent.Root)
	assert.Equal(t, "gemini", cfg.Model.Provider)
	assert.False(t, cfg.ErrorTracking.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MODEL_PROVIDER", "openai")
	t.Setenv("MODEL_NAME", "gpt-4o-mini")
	t.Setenv("ROOT_AGENT", "news_desk")
	t.Setenv("OPS_PORT", "9200")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Model.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model.Name)
	assert.Equal(t, "news_desk", cfg.Agent.Root)
	assert.Equal(t, 9200, cfg.Server.OpsPort)
}

func TestValidate(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		t.Setenv("MODEL_PROVIDER", "bard")

		_, err := Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrProviderUnknown))
	})

	t.Run("vertex requires project", func(t *testing.T) {
		t.Setenv("GOOGLE_GENAI_USE_VERTEXAI", "true")
		t.Setenv("GOOGLE_CLOUD_PROJECT", "")

		_, err := Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrProviderNotConfigured))
	})
}
