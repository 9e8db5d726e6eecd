package ai

import (
	"context"
	"encoding/json"
	"iter"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"citypulse/pkg/errors"
)

// OpenAIProvider builds models backed by an OpenAI-compatible Chat
// Completions API.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
}

// NewOpenAIProvider creates an OpenAI provider. baseURL is optional and
// defaults to the public API.
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	return &OpenAIProvider{apiKey: apiKey, baseURL: baseURL}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

// SupportsStreaming indicates streaming support. The chat adapter only
// implements unary completion, so the launcher must run with
// -streaming_mode none.
func (p *OpenAIProvider) SupportsStreaming() bool { return false }

// NewModel builds an OpenAI-backed model handle.
func (p *OpenAIProvider) NewModel(_ context.Context, modelName string) (model.LLM, error) {
	if p.apiKey == "" {
		return nil, errors.Wrap(errors.ErrProviderNotConfigured,
			"openai provider requires OPENAI_API_KEY")
	}

	clientConfig := openai.DefaultConfig(p.apiKey)
	if p.baseURL != "" {
		clientConfig.BaseURL = p.baseURL
	}

	return &openAIModel{
		name:   modelName,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

// openAIModel adapts the Chat Completions API to the framework's model
// contract: text messages, function tools, tool calls and tool results.
type openAIModel struct {
	name   string
	client *openai.Client
}

var _ model.LLM = (*openAIModel)(nil)

func (m *openAIModel) Name() string { return m.name }

func (m *openAIModel) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	if stream {
		return func(yield func(*model.LLMResponse, error) bool) {
			yield(nil, errors.Wrap(errors.ErrUnavailable,
				"openai model does not stream; run with -streaming_mode none"))
		}
	}

	return func(yield func(*model.LLMResponse, error) bool) {
		resp, err := m.generate(ctx, req)
		yield(resp, err)
	}
}

func (m *openAIModel) generate(ctx context.Context, req *model.LLMRequest) (*model.LLMResponse, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:    m.name,
		Messages: toChatMessages(req),
	}

	if req != nil && req.Config != nil {
		if req.Config.Temperature != nil {
			chatReq.Temperature = *req.Config.Temperature
		}
		if req.Config.TopP != nil {
			chatReq.TopP = *req.Config.TopP
		}
		if req.Config.MaxOutputTokens > 0 {
			chatReq.MaxTokens = int(req.Config.MaxOutputTokens)
		}
		if len(req.Config.StopSequences) > 0 {
			chatReq.Stop = req.Config.StopSequences
		}
	}

	if tools := toChatTools(req); len(tools) > 0 {
		chatReq.Tools = tools
		chatReq.ToolChoice = "auto"
	}

	resp, err := m.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, errors.Wrap(err, "openai chat completion")
	}
	if len(resp.Choices) == 0 {
		return nil, errors.Wrap(errors.ErrInternal, "openai returned no choices")
	}

	out := &model.LLMResponse{
		Content: fromChatMessage(resp.Choices[0].Message),
	}
	if resp.Usage.TotalTokens > 0 {
		out.UsageMetadata = &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     int32(resp.Usage.PromptTokens),
			CandidatesTokenCount: int32(resp.Usage.CompletionTokens),
			TotalTokenCount:      int32(resp.Usage.TotalTokens),
		}
	}

	return out, nil
}

// toChatMessages flattens framework contents into chat messages. Tool results
// become role=tool messages keyed by the originating call ID.
func toChatMessages(req *model.LLMRequest) []openai.ChatCompletionMessage {
	var out []openai.ChatCompletionMessage

	if req != nil && req.Config != nil && req.Config.SystemInstruction != nil {
		if sys := contentText(req.Config.SystemInstruction); sys != "" {
			out = append(out, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleSystem,
				Content: sys,
			})
		}
	}
	if req == nil {
		return out
	}

	for _, c := range req.Contents {
		if c == nil {
			continue
		}

		role := openai.ChatMessageRoleUser
		switch strings.ToLower(strings.TrimSpace(c.Role)) {
		case "model", "assistant":
			role = openai.ChatMessageRoleAssistant
		}

		var texts []string
		var toolCalls []openai.ToolCall
		var toolResults []*genai.FunctionResponse

		for _, p := range c.Parts {
			if p == nil {
				continue
			}
			switch {
			case p.Text != "":
				texts = append(texts, p.Text)
			case p.FunctionCall != nil:
				args, _ := json.Marshal(p.FunctionCall.Args)
				id := p.FunctionCall.ID
				if id == "" {
					id = "call_" + uuid.NewString()
				}
				toolCalls = append(toolCalls, openai.ToolCall{
					ID:   id,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      p.FunctionCall.Name,
						Arguments: string(args),
					},
				})
			case p.FunctionResponse != nil:
				toolResults = append(toolResults, p.FunctionResponse)
			}
		}

		if len(texts) > 0 || len(toolCalls) > 0 {
			msg := openai.ChatCompletionMessage{
				Role:    role,
				Content: strings.Join(texts, "\n"),
			}
			if role == openai.ChatMessageRoleAssistant {
				msg.ToolCalls = toolCalls
			}
			out = append(out, msg)
		}

		for _, r := range toolResults {
			raw, _ := json.Marshal(r.Response)
			out = append(out, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: r.ID,
				Content:    string(raw),
			})
		}
	}

	return out
}

func toChatTools(req *model.LLMRequest) []openai.Tool {
	if req == nil || req.Config == nil {
		return nil
	}

	var out []openai.Tool
	for _, t := range req.Config.Tools {
		if t == nil {
			continue
		}
		for _, d := range t.FunctionDeclarations {
			if d == nil || d.Name == "" {
				continue
			}
			out = append(out, openai.Tool{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        d.Name,
					Description: d.Description,
					Parameters:  d.ParametersJsonSchema,
				},
			})
		}
	}

	return out
}

// fromChatMessage converts a chat completion back into framework content.
func fromChatMessage(msg openai.ChatCompletionMessage) *genai.Content {
	c := &genai.Content{Role: "model"}

	if strings.TrimSpace(msg.Content) != "" {
		c.Parts = append(c.Parts, &genai.Part{Text: msg.Content})
	}

	for _, tc := range msg.ToolCalls {
		if tc.Type != openai.ToolTypeFunction {
			continue
		}
		args := map[string]any{}
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				args = map[string]any{"_raw": tc.Function.Arguments}
			}
		}
		c.Parts = append(c.Parts, &genai.Part{
			FunctionCall: &genai.FunctionCall{
				ID:   tc.ID,
				Name: tc.Function.Name,
				Args: args,
			},
		})
	}

	if len(c.Parts) == 0 {
		c.Parts = append(c.Parts, &genai.Part{Text: ""})
	}

	return c
}

func contentText(c *genai.Content) string {
	if c == nil {
		return ""
	}
	var parts []string
	for _, p := range c.Parts {
		if p != nil && p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n")
}
