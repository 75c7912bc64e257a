package transcript

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const sheetsValueInputRaw = "RAW"

type sheetsAppender interface {
	Append(ctx context.Context, spreadsheetID, readRange string, values [][]interface{}) error
}

type googleSheetsAppender struct {
	svc *sheets.Service
}

func (a *googleSheetsAppender) Append(ctx context.Context, spreadsheetID, readRange string, values [][]interface{}) error {
	_, err := a.svc.Spreadsheets.Values.Append(spreadsheetID, readRange, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption(sheetsValueInputRaw).Context(ctx).Do()
	return err
}

// SheetsStore appends transcripts to a Google Sheet. It is write-only:
// History and Recent return ErrNotSupported.
type SheetsStore struct {
	appender      sheetsAppender
	spreadsheetID string
	sheetRange    string
}

// NewSheetsStore builds a sheet-backed sink from service account
// credentials JSON.
func NewSheetsStore(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*SheetsStore, error) {
	if len(credentialsJSON) == 0 {
		return nil, fmt.Errorf("transcript: sheets credentials required")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("transcript: spreadsheet id required")
	}

	svc, err := sheets.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("transcript: sheets service: %w", err)
	}
	return newSheetsStore(&googleSheetsAppender{svc: svc}, spreadsheetID), nil
}

func newSheetsStore(appender sheetsAppender, spreadsheetID string) *SheetsStore {
	return &SheetsStore{
		appender:      appender,
		spreadsheetID: spreadsheetID,
		sheetRange:    "Conversations!A:G",
	}
}

// Log appends one row: timestamp, id, session, user, message, response,
// source.
func (s *SheetsStore) Log(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	row := []interface{}{
		entry.CreatedAt.Format(time.RFC3339),
		entry.ID,
		entry.SessionID,
		entry.UserID,
		entry.UserMessage,
		entry.BotResponse,
		entry.Source,
	}
	if err := s.appender.Append(ctx, s.spreadsheetID, s.sheetRange, [][]interface{}{row}); err != nil {
		return fmt.Errorf("transcript: sheets append: %w", err)
	}
	return nil
}

// History is not supported on the sheet sink.
func (s *SheetsStore) History(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	return nil, ErrNotSupported
}

// Recent is not supported on the sheet sink.
func (s *SheetsStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return nil, ErrNotSupported
}
