package task

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"

	"tableflip.dev/party/pkg/log"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"

	systemPrompt = "You are a children's party planner. You answer with JSON only."
)

// OpenAI is a Completer backed by an OpenAI compatible chat completion API.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI returns a Completer for the given credentials, or nil when no API
// key is set so callers fall straight through to the rule library.
func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	if apiKey == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" && baseURL != "https://api.openai.com/v1" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &OpenAI{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete implements Completer.
func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	if o == nil {
		return "", errors.New("task: openai not configured")
	}
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	log.Debug().Str("model", o.model).Msg("task: requesting checklist")
	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("task: completion has no choices")
	}
	log.Debug().
		Str("finishReason", string(resp.Choices[0].FinishReason)).
		Int("totalTokens", resp.Usage.TotalTokens).
		Msg("task: checklist response")
	return resp.Choices[0].Message.Content, nil
}
