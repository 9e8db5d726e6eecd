package agents

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/agent/workflowagents/sequentialagent"
	adktool "google.golang.org/adk/tool"
	"google.golang.org/adk/tool/agenttool"

	"citypulse/pkg/errors"
)

// createMarketSummary wraps the two analyst agents as tools behind a single
// coordinating agent, so one question fans out to news and price research.
func (f *Factory) createMarketSummary(newsAnalyst, stockAnalyst agent.Agent) (agent.Agent, error) {
	if newsAnalyst == nil || stockAnalyst == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "market summary requires both analysts")
	}

	instruction, err := f.templates.Render("agents/market_summary", map[string]interface{}{
		"AgentName": string(AgentMarketSummary),
	})
	if err != nil {
		return nil, errors.Wrap(err, "render market summary prompt")
	}

	ag, err := llmagent.New(llmagent.Config{
		Name:        string(AgentMarketSummary),
		Description: "Combines company news and stock data into a market summary.",
		Model:       f.model,
		Instruction: instruction,
		Tools: []adktool.Tool{
			agenttool.New(newsAnalyst, &agenttool.Config{SkipSummarization: true}),
			agenttool.New(stockAnalyst, &agenttool.Config{SkipSummarization: true}),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "create market summary agent")
	}

	return ag, nil
}

// createDailyBriefing chains the researcher and summarizer: the researcher
// writes its findings to session state, the summarizer reads them back.
func (f *Factory) createDailyBriefing(researcher, summarizer agent.Agent) (agent.Agent, error) {
	if researcher == nil || summarizer == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "daily briefing requires both stages")
	}

	ag, err := sequentialagent.New(sequentialagent.Config{
		AgentConfig: agent.Config{
			Name:        string(AgentDailyBriefing),
			Description: "Researches a topic and condenses the findings into a briefing.",
			SubAgents:   []agent.Agent{researcher, summarizer},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "create daily briefing pipeline")
	}

	return ag, nil
}
