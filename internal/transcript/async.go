package transcript

import (
	"context"
	"time"

	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

const asyncLogTimeout = 5 * time.Second

// AsyncStore wraps a Store so Log returns immediately and the write runs in
// the background. A failed write is logged and dropped; chat responses never
// wait on the sink.
type AsyncStore struct {
	inner   Store
	logger  *logging.Logger
	timeout time.Duration
}

// NewAsyncStore wraps inner with fire-and-forget logging.
func NewAsyncStore(inner Store, logger *logging.Logger) *AsyncStore {
	if inner == nil {
		panic("transcript: inner store cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AsyncStore{inner: inner, logger: logger, timeout: asyncLogTimeout}
}

// Log writes in a background goroutine detached from the request context.
func (s *AsyncStore) Log(ctx context.Context, entry Entry) error {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.inner.Log(bgCtx, entry); err != nil {
			s.logger.Error("transcript log failed",
				"error", err,
				"session_id", entry.SessionID,
				"source", entry.Source,
			)
		}
	}()
	return nil
}

// History reads through to the inner store.
func (s *AsyncStore) History(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	return s.inner.History(ctx, sessionID, limit)
}

// Recent reads through to the inner store.
func (s *AsyncStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return s.inner.Recent(ctx, limit)
}
