package agents

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	adksession "google.golang.org/adk/session"
	"google.golang.org/genai"

	"citypulse/internal/metrics"
	"citypulse/pkg/errors"
	"citypulse/pkg/logger"
)

// Result holds the outcome of a one-shot agent run.
type Result struct {
	Text         string
	SessionID    string
	InputTokens  int
	OutputTokens int
	ToolCalls    int
	Duration     time.Duration
}

// Executor drives a single agent through the runner for one-shot prompts,
// used by the ask command.
type Executor struct {
	runner    *runner.Runner
	agentName string
	sessions  adksession.Service
	appName   string
	log       *logger.Logger
}

// NewExecutor wires an agent into a runner backed by in-memory sessions.
func NewExecutor(appName string, ag agent.Agent) (*Executor, error) {
	sessions := adksession.InMemoryService()

	r, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          ag,
		SessionService: sessions,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create runner")
	}

	return &Executor{
		runner:    r,
		agentName: ag.Name(),
		sessions:  sessions,
		appName:   appName,
		log:       logger.Get().With("component", "executor", "agent", ag.Name()),
	}, nil
}

// Ask sends one prompt through the agent and collects the final response.
func (e *Executor) Ask(ctx context.Context, prompt string) (*Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "prompt is empty")
	}

	start := time.Now()
	userID := uuid.NewString()

	createResp, err := e.sessions.Create(ctx, &adksession.CreateRequest{
		AppName: e.appName,
		UserID:  userID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create session")
	}
	sessionID := createResp.Session.ID()

	content := &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}
	runConfig := agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	}

	result := &Result{SessionID: sessionID}
	var finalText strings.Builder

	for event, err := range e.runner.Run(ctx, userID, sessionID, content, runConfig) {
		if err != nil {
			metrics.ObserveAgentRun(e.agentName, time.Since(start), err)
			return nil, errors.Wrap(err, "agent run")
		}
		if event == nil || event.LLMResponse.Partial {
			continue
		}

		if event.UsageMetadata != nil {
			result.InputTokens += int(event.UsageMetadata.PromptTokenCount)
			result.OutputTokens += int(event.UsageMetadata.CandidatesTokenCount)
		}

		if event.LLMResponse.Content == nil {
			continue
		}
		for _, part := range event.LLMResponse.Content.Parts {
			if part == nil {
				continue
			}
			if part.FunctionCall != nil {
				result.ToolCalls++
				e.log.Debugw("tool call", "tool", part.FunctionCall.Name, "session_id", sessionID)
			}
			if part.Text != "" && event.IsFinalResponse() {
				finalText.WriteString(part.Text)
			}
		}
	}

	result.Text = strings.TrimSpace(finalText.String())
	result.Duration = time.Since(start)
	metrics.ObserveAgentRun(e.agentName, result.Duration, nil)

	e.log.Infow("run complete",
		"session_id", sessionID,
		"duration", result.Duration,
		"input_tokens", result.InputTokens,
		"output_tokens", result.OutputTokens,
		"tool_calls", result.ToolCalls,
	)

	return result, nil
}
