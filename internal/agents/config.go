package agents

import "citypulse/internal/tools"

// AgentConfig captures the settings needed to instantiate one LLM agent.
type AgentConfig struct {
	Type        AgentType
	Name        string
	Description string

	// Tools lists catalog tool names resolved through the tool registry.
	Tools []string

	// UseGoogleSearch attaches the built-in web search tool. Only honored on
	// Gemini models.
	UseGoogleSearch bool

	SystemPromptTemplate string

	// OutputKey stores the agent's final response in session state, making it
	// available to later pipeline stages.
	OutputKey string
}

// DefaultAgentConfigs declares every directly-instantiated LLM agent. Workflow
// agents (market_summary, daily_briefing) are assembled from these in the
// factory.
var DefaultAgentConfigs = map[AgentType]AgentConfig{
	AgentCityConcierge: {
		Type:                 AgentCityConcierge,
		Name:                 "city_concierge",
		Description:          "Agent to answer questions about the time and weather in a city.",
		Tools:                []string{tools.WeatherTool, tools.TimeTool, tools.CitiesTool},
		SystemPromptTemplate: "agents/city_concierge",
	},
	AgentNewsDesk: {
		Type:                 AgentNewsDesk,
		Name:                 "news_desk",
		Description:          "Agent that aggregates today's technology headlines from major outlets.",
		UseGoogleSearch:      true,
		SystemPromptTemplate: "agents/news_desk",
	},
	AgentNewsAnalyst: {
		Type:                 AgentNewsAnalyst,
		Name:                 "news_analyst",
		Description:          "Searches the web for recent news about a company.",
		UseGoogleSearch:      true,
		SystemPromptTemplate: "agents/news_analyst",
	},
	AgentStockAnalyst: {
		Type:                 AgentStockAnalyst,
		Name:                 "stock_analyst",
		Description:          "Searches the web for current stock price and market movement.",
		UseGoogleSearch:      true,
		SystemPromptTemplate: "agents/stock_analyst",
	},
	AgentResearcher: {
		Type:                 AgentResearcher,
		Name:                 "researcher",
		Description:          "Gathers raw findings on the requested topic.",
		UseGoogleSearch:      true,
		SystemPromptTemplate: "agents/researcher",
		OutputKey:            "research_findings",
	},
	AgentSummarizer: {
		Type:                 AgentSummarizer,
		Name:                 "summarizer",
		Description:          "Condenses research findings into a short briefing.",
		SystemPromptTemplate: "agents/summarizer",
	},
}
