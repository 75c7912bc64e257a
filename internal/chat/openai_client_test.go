package chat

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompletionAPI struct {
	request  openai.ChatCompletionRequest
	response openai.ChatCompletionResponse
	err      error
}

func (s *stubCompletionAPI) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.request = req
	return s.response, s.err
}

func TestOpenAIClientComplete(t *testing.T) {
	api := &stubCompletionAPI{
		response: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "  Hello from Anthill IQ!  "}},
			},
		},
	}
	client := newOpenAIClient(api, WithModel("gpt-4o-mini"))

	reply, err := client.Complete(context.Background(), []ChatMessage{
		{Role: ChatRoleSystem, Content: "persona"},
		{Role: ChatRoleUser, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello from Anthill IQ!", reply)

	assert.Equal(t, "gpt-4o-mini", api.request.Model)
	require.Len(t, api.request.Messages, 2)
	assert.Equal(t, ChatRoleSystem, api.request.Messages[0].Role)
	assert.InDelta(t, defaultTemperature, api.request.Temperature, 0.001)
	assert.Equal(t, defaultMaxTokens, api.request.MaxTokens)
}

func TestOpenAIClientUpstreamErrors(t *testing.T) {
	api := &stubCompletionAPI{err: errors.New("429 too many requests")}
	client := newOpenAIClient(api)

	_, err := client.Complete(context.Background(), []ChatMessage{{Role: ChatRoleUser, Content: "hi"}})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestOpenAIClientEmptyChoices(t *testing.T) {
	client := newOpenAIClient(&stubCompletionAPI{})

	_, err := client.Complete(context.Background(), []ChatMessage{{Role: ChatRoleUser, Content: "hi"}})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	assert.Panics(t, func() { NewOpenAIClient("") })
}
