package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"citypulse/pkg/errors"
)

type Config struct {
	App           AppConfig
	Server        ServerConfig
	Agent         AgentConfig
	Model         ModelConfig
	Tools         ToolsConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"citypulse"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

type ServerConfig struct {
	// Port is consumed by the ADK launcher (`web -port`); recorded here so the
	// health endpoint can report it.
	Port    int `envconfig:"PORT" default:"8080"`
	OpsPort int `envconfig:"OPS_PORT" default:"9091"`
}

type AgentConfig struct {
	// Root selects which registered agent the launcher serves.
	Root string `envconfig:"ROOT_AGENT" default:"city_concierge"`
}

type ModelConfig struct {
	Provider string `envconfig:"MODEL_PROVIDER" default:"gemini"`
	Name     string `envconfig:"MODEL_NAME" default:"gemini-2.5-flash"`

	GoogleAPIKey  string `envconfig:"GOOGLE_API_KEY"`
	UseVertexAI   bool   `envconfig:"GOOGLE_GENAI_USE_VERTEXAI" default:"false"`
	VertexProject string `envconfig:"GOOGLE_CLOUD_PROJECT"`
	VertexRegion  string `envconfig:"GOOGLE_CLOUD_LOCATION" default:"us-central1"`

	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`
}

type ToolsConfig struct {
	Timeout time.Duration `envconfig:"TOOL_TIMEOUT" default:"10s"`
	// RateLimit is calls per minute per tool; zero disables limiting.
	RateLimit float64 `envconfig:"TOOL_RATE_LIMIT" default:"0"`
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints that envconfig tags cannot express.
func (c *Config) Validate() error {
	switch c.Model.Provider {
	case "gemini", "openai":
	default:
		return errors.Wrapf(errors.ErrProviderUnknown, "MODEL_PROVIDER=%q", c.Model.Provider)
	}

	if c.Model.UseVertexAI && c.Model.VertexProject == "" {
		return errors.Wrap(errors.ErrProviderNotConfigured,
			"GOOGLE_GENAI_USE_VERTEXAI requires GOOGLE_CLOUD_PROJECT")
	}

	return nil
}
