// Package bootstrap wires configuration, logging, the model backend, tools
// and agents into a runnable application.
package bootstrap

import (
	"context"

	"google.golang.org/adk/agent"

	"citypulse/internal/adapters/ai"
	"citypulse/internal/adapters/config"
	noopTracker "citypulse/internal/adapters/errors/noop"
	sentryTracker "citypulse/internal/adapters/errors/sentry"
	"citypulse/internal/agents"
	"citypulse/internal/api/health"
	"citypulse/internal/tools"
	"citypulse/pkg/errors"
	"citypulse/pkg/logger"
	"citypulse/pkg/templates"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Container holds all application dependencies.
// Components are organized in initialization order
type Container struct {
	Config       *config.Config
	Log          *logger.Logger
	ErrorTracker errors.Tracker

	ToolRegistry  *tools.Registry
	AgentRegistry *agents.Registry

	// RootAgent is the agent the launcher serves, selected by ROOT_AGENT.
	RootAgent agent.Agent

	Health *health.Handler
}

// NewContainer initializes all components in dependency order.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		return nil, errors.Wrap(err, "init logger")
	}
	log := logger.Get()

	tracker, err := newTracker(cfg)
	if err != nil {
		return nil, err
	}
	logger.SetErrorTracker(tracker)

	model, err := ai.NewModel(ctx, cfg.Model)
	if err != nil {
		return nil, errors.Wrap(err, "init model backend")
	}
	log.Infow("model backend ready", "provider", cfg.Model.Provider, "model", cfg.Model.Name)

	toolRegistry := tools.NewRegistry()
	if err := tools.RegisterAll(toolRegistry, cfg.Tools); err != nil {
		return nil, errors.Wrap(err, "register tools")
	}

	factory, err := agents.NewFactory(agents.FactoryDeps{
		Model:        model,
		ToolRegistry: toolRegistry,
		Templates:    templates.Get(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create agent factory")
	}

	agentRegistry, err := factory.CreateRegistry()
	if err != nil {
		return nil, errors.Wrap(err, "build agents")
	}
	log.Infow("agents ready", "agents", agentRegistry.List())

	rootAgent, err := agentRegistry.Get(agents.AgentType(cfg.Agent.Root))
	if err != nil {
		return nil, errors.Wrapf(err, "ROOT_AGENT=%s", cfg.Agent.Root)
	}

	c := &Container{
		Config:        cfg,
		Log:           log,
		ErrorTracker:  tracker,
		ToolRegistry:  toolRegistry,
		AgentRegistry: agentRegistry,
		RootAgent:     rootAgent,
	}
	c.Health = health.New(log, cfg.App.Name, Version, c.readinessChecks())

	return c, nil
}

func newTracker(cfg *config.Config) (errors.Tracker, error) {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		return noopTracker.New(), nil
	}

	tracker, err := sentryTracker.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		return nil, errors.Wrap(err, "init sentry")
	}

	return tracker, nil
}

func (c *Container) readinessChecks() map[string]health.Check {
	return map[string]health.Check{
		"templates": func(context.Context) error {
			if len(templates.Get().List()) == 0 {
				return errors.Wrap(errors.ErrInternal, "no prompt templates loaded")
			}
			return nil
		},
		"agents": func(context.Context) error {
			_, err := c.AgentRegistry.Get(agents.AgentType(c.Config.Agent.Root))
			return err
		},
		"tools": func(context.Context) error {
			if len(c.ToolRegistry.List()) == 0 {
				return errors.Wrap(errors.ErrInternal, "no tools registered")
			}
			return nil
		},
	}
}
