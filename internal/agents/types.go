// Package agents builds and runs the LLM agents exposed by the service.
package agents

// AgentType identifies a configured agent.
type AgentType string

const (
	// AgentCityConcierge answers weather and time questions over the
	// built-in city tools.
	AgentCityConcierge AgentType = "city_concierge"

	// AgentNewsDesk aggregates technology headlines via web search.
	AgentNewsDesk AgentType = "news_desk"

	// AgentNewsAnalyst and AgentStockAnalyst are the market summary
	// sub-agents, exposed to the orchestrator as tools.
	AgentNewsAnalyst  AgentType = "news_analyst"
	AgentStockAnalyst AgentType = "stock_analyst"

	// AgentMarketSummary merges the two analysts into one report.
	AgentMarketSummary AgentType = "market_summary"

	// AgentResearcher and AgentSummarizer form the daily briefing pipeline.
	AgentResearcher    AgentType = "researcher"
	AgentSummarizer    AgentType = "summarizer"
	AgentDailyBriefing AgentType = "daily_briefing"
)

func (t AgentType) String() string { return string(t) }
