package agents

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	adkmodel "google.golang.org/adk/model"
	"google.golang.org/adk/tool/geminitool"

	"citypulse/internal/tools"
	"citypulse/pkg/errors"
	"citypulse/pkg/templates"
)

// FactoryDeps gathers external dependencies needed to instantiate agents.
type FactoryDeps struct {
	Model        adkmodel.LLM
	ToolRegistry *tools.Registry
	Templates    *templates.Registry
}

// Factory creates configured agents and registries.
type Factory struct {
	model        adkmodel.LLM
	toolRegistry *tools.Registry
	templates    *templates.Registry
}

// NewFactory builds an agent factory with required dependencies.
func NewFactory(deps FactoryDeps) (*Factory, error) {
	if deps.Model == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "model is required")
	}
	if deps.ToolRegistry == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "tool registry is required")
	}
	if deps.Templates == nil {
		deps.Templates = templates.Get()
	}

	return &Factory{
		model:        deps.Model,
		toolRegistry: deps.ToolRegistry,
		templates:    deps.Templates,
	}, nil
}

// CreateAgent constructs a single LLM agent from a config.
func (f *Factory) CreateAgent(cfg AgentConfig) (agent.Agent, error) {
	agentTools, err := f.toolRegistry.Resolve(cfg.Tools)
	if err != nil {
		return nil, errors.Wrapf(err, "agent %s", cfg.Name)
	}
	if cfg.UseGoogleSearch {
		agentTools = append(agentTools, geminitool.GoogleSearch{})
	}

	instruction, err := f.renderInstruction(cfg)
	if err != nil {
		return nil, err
	}

	ag, err := llmagent.New(llmagent.Config{
		Name:        cfg.Name,
		Description: cfg.Description,
		Model:       f.model,
		Tools:       agentTools,
		Instruction: instruction,
		OutputKey:   cfg.OutputKey,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "create agent %s", cfg.Name)
	}

	return ag, nil
}

func (f *Factory) renderInstruction(cfg AgentConfig) (string, error) {
	if cfg.SystemPromptTemplate == "" {
		return "", nil
	}

	definitionByName := map[string]tools.Definition{}
	for _, def := range tools.Definitions() {
		definitionByName[def.Name] = def
	}

	toolInfo := make([]tools.Definition, 0, len(cfg.Tools))
	for _, name := range cfg.Tools {
		if def, ok := definitionByName[name]; ok {
			toolInfo = append(toolInfo, def)
		} else {
			toolInfo = append(toolInfo, tools.Definition{Name: name})
		}
	}

	instruction, err := f.templates.Render(cfg.SystemPromptTemplate, map[string]interface{}{
		"AgentName": cfg.Name,
		"Tools":     toolInfo,
	})
	if err != nil {
		return "", errors.Wrapf(err, "render prompt for %s", cfg.Name)
	}

	return instruction, nil
}

// CreateRegistry builds every default agent plus the composed workflows.
func (f *Factory) CreateRegistry() (*Registry, error) {
	reg := NewRegistry()

	built := make(map[AgentType]agent.Agent, len(DefaultAgentConfigs))
	for agentType, cfg := range DefaultAgentConfigs {
		ag, err := f.CreateAgent(cfg)
		if err != nil {
			return nil, err
		}
		built[agentType] = ag
		reg.Register(agentType, ag)
	}

	marketSummary, err := f.createMarketSummary(built[AgentNewsAnalyst], built[AgentStockAnalyst])
	if err != nil {
		return nil, err
	}
	reg.Register(AgentMarketSummary, marketSummary)

	dailyBriefing, err := f.createDailyBriefing(built[AgentResearcher], built[AgentSummarizer])
	if err != nil {
		return nil, err
	}
	reg.Register(AgentDailyBriefing, dailyBriefing)

	return reg, nil
}
