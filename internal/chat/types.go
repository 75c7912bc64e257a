package chat

import "errors"

// Source tags identify which component produced the final response text.
// Post-processing rewrites never change the tag.
const (
	SourceRuleBased     = "rule_based"
	SourceLanguageModel = "language_model"
	SourceBooking       = "booking"
	SourceError         = "error"
)

// ErrEmptyMessage indicates the caller submitted a blank message. Maps to
// HTTP 400; no model call or transcript entry is made.
var ErrEmptyMessage = errors.New("chat: message cannot be empty")

// DefaultUserID is used when the widget does not identify the user.
const DefaultUserID = "anonymous"

// Request is one inbound chat turn.
type Request struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// Response is the outbound envelope returned to the widget.
type Response struct {
	Response           string `json:"response"`
	Source             string `json:"source"`
	SessionID          string `json:"session_id"`
	ShouldStartBooking bool   `json:"should_start_booking,omitempty"`
}
