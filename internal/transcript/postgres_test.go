package transcript

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStoreLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO conversations").
		WithArgs("c1", "s1", "u1", "hi", "hello", "rule_based", created).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewPostgresStore(mock)
	err = store.Log(context.Background(), Entry{
		ID:          "c1",
		SessionID:   "s1",
		UserID:      "u1",
		UserMessage: "hi",
		BotResponse: "hello",
		Source:      "rule_based",
		CreatedAt:   created,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "session_id", "user_id", "user_message", "bot_response", "source", "created_at"}).
		AddRow("c1", "s1", "u1", "hi", "hello", "rule_based", created).
		AddRow("c2", "s1", "u1", "prices?", "pricing reply", "rule_based", created.Add(time.Minute))
	mock.ExpectQuery("SELECT (.+) FROM conversations").
		WithArgs("s1", 10).
		WillReturnRows(rows)

	store := NewPostgresStore(mock)
	got, err := store.History(context.Background(), "s1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "prices?", got[1].UserMessage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "session_id", "user_id", "user_message", "bot_response", "source", "created_at"}).
		AddRow("c2", "s2", "u2", "later", "reply", "language_model", created)
	mock.ExpectQuery("SELECT (.+) FROM conversations").
		WithArgs(5).
		WillReturnRows(rows)

	store := NewPostgresStore(mock)
	got, err := store.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "language_model", got[0].Source)
	require.NoError(t, mock.ExpectationsWereMet())
}
