package agents

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/adk/model"

	"citypulse/internal/adapters/config"
	"citypulse/internal/tools"
	"citypulse/pkg/errors"
)

// stubModel satisfies the model contract without any backend.
type stubModel struct{}

func (stubModel) Name() string { return "stub" }

func (stubModel) GenerateContent(context.Context, *model.LLMRequest, bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		yield(nil, errors.New("stub model cannot generate"))
	}
}

func newTestFactory(t *testing.T) *Factory {
	t.Helper()

	registry := tools.NewRegistry()
	require.NoError(t, tools.RegisterAll(registry, config.ToolsConfig{Timeout: 5 * time.Second}))

	f, err := NewFactory(FactoryDeps{
		Model:        stubModel{},
		ToolRegistry: registry,
	})
	require.NoError(t, err)
	return f
}

func TestNewFactoryRequiresDeps(t *testing.T) {
	_, err := NewFactory(FactoryDeps{ToolRegistry: tools.NewRegistry()})
	assert.Error(t, err)

	_, err = NewFactory(FactoryDeps{Model: stubModel{}})
	assert.Error(t, err)
}

func TestCreateAgent(t *testing.T) {
	f := newTestFactory(t)

	ag, err := f.CreateAgent(DefaultAgentConfigs[AgentCityConcierge])
	require.NoError(t, err)
	assert.Equal(t, "city_concierge", ag.Name())
}

func TestCreateAgentUnknownTool(t *testing.T) {
	f := newTestFactory(t)

	cfg := DefaultAgentConfigs[AgentCityConcierge]
	cfg.Tools = []string{"get_stock_price"}

	_, err := f.CreateAgent(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrToolNotFound))
}

func TestCreateRegistry(t *testing.T) {
	f := newTestFactory(t)

	reg, err := f.CreateRegistry()
	require.NoError(t, err)

	for _, agentType := range []AgentType{
		AgentCityConcierge,
		AgentNewsDesk,
		AgentNewsAnalyst,
		AgentStockAnalyst,
		AgentMarketSummary,
		AgentResearcher,
		AgentSummarizer,
		AgentDailyBriefing,
	} {
		ag, err := reg.Get(agentType)
		require.NoErrorf(t, err, "agent %s missing", agentType)
		assert.Equal(t, string(agentType), ag.Name())
	}

	_, err = reg.Get("unknown")
	assert.True(t, errors.Is(err, errors.ErrAgentNotFound))
}
