package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel       = "gpt-3.5-turbo"
	defaultTemperature = 0.7
	defaultMaxTokens   = 500
	defaultLLMTimeout  = 30 * time.Second
)

type completionAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient is the production LLMClient backed by the OpenAI chat
// completion API.
type OpenAIClient struct {
	client  completionAPI
	model   string
	timeout time.Duration
}

// OpenAIOption configures the client.
type OpenAIOption func(*OpenAIClient)

// WithModel overrides the completion model.
func WithModel(model string) OpenAIOption {
	return func(c *OpenAIClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout overrides the per-call deadline.
func WithTimeout(d time.Duration) OpenAIOption {
	return func(c *OpenAIClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewOpenAIClient wraps an API key into an LLMClient.
func NewOpenAIClient(apiKey string, opts ...OpenAIOption) *OpenAIClient {
	if apiKey == "" {
		panic("chat: OpenAI API key cannot be empty")
	}
	return newOpenAIClient(openai.NewClient(apiKey), opts...)
}

func newOpenAIClient(api completionAPI, opts ...OpenAIOption) *OpenAIClient {
	c := &OpenAIClient{
		client:  api,
		model:   defaultModel,
		timeout: defaultLLMTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends the conversation to OpenAI and returns the reply text.
// API errors and empty responses are reported as ErrUpstream; no retry is
// attempted here.
func (c *OpenAIClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	converted := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		converted = append(converted, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    converted,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrUpstream)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
