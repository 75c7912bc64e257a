package transcript

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresStore persists transcripts in the conversations table.
type PostgresStore struct {
	pool db
}

// NewPostgresStore initializes a store backed by a pgx pool.
func NewPostgresStore(pool db) *PostgresStore {
	if pool == nil {
		panic("transcript: pgx pool required")
	}
	return &PostgresStore{pool: pool}
}

// Log inserts one exchange.
func (s *PostgresStore) Log(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO conversations (id, session_id, user_id, user_message, bot_response, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := s.pool.Exec(ctx, query,
		entry.ID,
		entry.SessionID,
		entry.UserID,
		entry.UserMessage,
		entry.BotResponse,
		entry.Source,
		entry.CreatedAt,
	); err != nil {
		return fmt.Errorf("transcript: insert failed: %w", err)
	}
	return nil
}

// History returns entries for one session, oldest first.
func (s *PostgresStore) History(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	query := `
		SELECT id, session_id, user_id, user_message, bot_response, source, created_at
		FROM conversations
		WHERE session_id = $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("transcript: select failed: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Recent returns the latest entries across all sessions, newest first.
func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, session_id, user_id, user_message, bot_response, source, created_at
		FROM conversations
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("transcript: select failed: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]Entry, error) {
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID,
			&e.SessionID,
			&e.UserID,
			&e.UserMessage,
			&e.BotResponse,
			&e.Source,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("transcript: scan failed: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("transcript: rows failed: %w", err)
	}
	return out, nil
}
