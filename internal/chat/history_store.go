package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultHistoryWindow = 10 // turns (user+assistant pairs)
	defaultHistoryTTL    = 24 * time.Hour
)

// HistoryStore keeps a rolling per-session conversation context in Redis so
// the model sees recent turns. Optional: a nil store disables history and
// each message is answered in isolation.
type HistoryStore struct {
	client *redis.Client
	window int
	ttl    time.Duration
}

// NewHistoryStore builds a Redis-backed history store. window is the number
// of retained turns; ttl expires idle sessions.
func NewHistoryStore(client *redis.Client, window int, ttl time.Duration) *HistoryStore {
	if client == nil {
		panic("chat: redis client cannot be nil")
	}
	if window <= 0 {
		window = defaultHistoryWindow
	}
	if ttl <= 0 {
		ttl = defaultHistoryTTL
	}
	return &HistoryStore{client: client, window: window, ttl: ttl}
}

func historyKey(sessionID string) string {
	return "chat:history:" + sessionID
}

// Append stores messages at the end of the session history and trims it to
// the configured window.
func (s *HistoryStore) Append(ctx context.Context, sessionID string, messages ...ChatMessage) error {
	if s == nil || sessionID == "" || len(messages) == 0 {
		return nil
	}

	key := historyKey(sessionID)
	values := make([]interface{}, 0, len(messages))
	for _, m := range messages {
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("chat: encode history message: %w", err)
		}
		values = append(values, data)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, int64(-s.window*2), -1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("chat: append history: %w", err)
	}
	return nil
}

// Load returns the retained history for a session, oldest first.
func (s *HistoryStore) Load(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	if s == nil || sessionID == "" {
		return nil, nil
	}

	raw, err := s.client.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("chat: load history: %w", err)
	}

	messages := make([]ChatMessage, 0, len(raw))
	for _, item := range raw {
		var m ChatMessage
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			// Skip corrupt entries rather than failing the whole turn.
			continue
		}
		messages = append(messages, m)
	}
	return messages, nil
}
