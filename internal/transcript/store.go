// Package transcript persists chat exchanges and exposes them for the
// history and stats endpoints. Logging is best-effort: the Router fires a
// write and never fails a chat response over a sink error.
package transcript

import (
	"context"
	"errors"
	"time"
)

// Entry is one logged exchange.
type Entry struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	UserID      string    `json:"user_id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrNotSupported is returned by write-only sinks for read operations.
var ErrNotSupported = errors.New("transcript: operation not supported by this store")

// Store receives chat exchanges for persistence.
type Store interface {
	Log(ctx context.Context, entry Entry) error
	// History returns entries for one session, oldest first.
	History(ctx context.Context, sessionID string, limit int) ([]Entry, error)
	// Recent returns the latest entries across all sessions, newest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}
