package ai

import (
	"encoding/json"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

func TestToChatMessages(t *testing.T) {
	req := &model.LLMRequest{
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: "You are a city assistant."}},
			},
		},
		Contents: []*genai.Content{
			{
				Role:  "user",
				Parts: []*genai.Part{{Text: "What time is it in Tokyo?"}},
			},
			{
				Role: "model",
				Parts: []*genai.Part{{
					FunctionCall: &genai.FunctionCall{
						ID:   "call_1",
						Name: "get_current_time",
						Args: map[string]any{"city": "Tokyo"},
					},
				}},
			},
			{
				Role: "user",
				Parts: []*genai.Part{{
					FunctionResponse: &genai.FunctionResponse{
						ID:       "call_1",
						Name:     "get_current_time",
						Response: map[string]any{"status": "success", "report": "..."},
					},
				}},
			},
		},
	}

	msgs := toChatMessages(req)
	require.Len(t, msgs, 4)

	assert.Equal(t, openai.ChatMessageRoleSystem, msgs[0].Role)
	assert.Equal(t, "You are a city assistant.", msgs[0].Content)

	assert.Equal(t, openai.ChatMessageRoleUser, msgs[1].Role)

	assert.Equal(t, openai.ChatMessageRoleAssistant, msgs[2].Role)
	require.Len(t, msgs[2].ToolCalls, 1)
	assert.Equal(t, "get_current_time", msgs[2].ToolCalls[0].Function.Name)

	var args map[string]any
	require.NoError(t, json.Unmarshal([]byte(msgs[2].ToolCalls[0].Function.Arguments), &args))
	assert.Equal(t, "Tokyo", args["city"])

	assert.Equal(t, openai.ChatMessageRoleTool, msgs[3].Role)
	assert.Equal(t, "call_1", msgs[3].ToolCallID)
}

func TestToChatTools(t *testing.T) {
	req := &model.LLMRequest{
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{{
				FunctionDeclarations: []*genai.FunctionDeclaration{{
					Name:                 "get_weather",
					Description:          "Weather lookup.",
					ParametersJsonSchema: map[string]any{"type": "object"},
				}},
			}},
		},
	}

	tools := toChatTools(req)
	require.Len(t, tools, 1)
	assert.Equal(t, openai.ToolTypeFunction, tools[0].Type)
	assert.Equal(t, "get_weather", tools[0].Function.Name)
}

func TestFromChatMessage(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		c := fromChatMessage(openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: "It is sunny.",
		})
		require.Len(t, c.Parts, 1)
		assert.Equal(t, "model", c.Role)
		assert.Equal(t, "It is sunny.", c.Parts[0].Text)
	})

	t.Run("tool call", func(t *testing.T) {
		c := fromChatMessage(openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleAssistant,
			ToolCalls: []openai.ToolCall{{
				ID:   "call_2",
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      "get_weather",
					Arguments: `{"city":"London"}`,
				},
			}},
		})
		require.Len(t, c.Parts, 1)
		call := c.Parts[0].FunctionCall
		require.NotNil(t, call)
		assert.Equal(t, "get_weather", call.Name)
		assert.Equal(t, map[string]any{"city": "London"}, call.Args)
	})

	t.Run("malformed arguments passed through", func(t *testing.T) {
		c := fromChatMessage(openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleAssistant,
			ToolCalls: []openai.ToolCall{{
				ID:       "call_3",
				Type:     openai.ToolTypeFunction,
				Function: openai.FunctionCall{Name: "get_weather", Arguments: "not json"},
			}},
		})
		require.Len(t, c.Parts, 1)
		assert.Equal(t, map[string]any{"_raw": "not json"}, c.Parts[0].FunctionCall.Args)
	})
}
