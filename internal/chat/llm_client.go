package chat

import (
	"context"
	"errors"
)

const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is the internal message representation passed to the model.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ErrUpstream indicates the language-model API failed or returned no
// content. The Router recovers by substituting the phone-contact fallback;
// it is never surfaced as a hard failure to the end user.
var ErrUpstream = errors.New("chat: language model upstream failure")

// LLMClient produces a completion for the given conversation. Implementations
// bound the call with a timeout and perform no retries.
type LLMClient interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
