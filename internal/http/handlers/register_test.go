package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/transcript"
	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

func TestHandleRegisterSuccess(t *testing.T) {
	store := transcript.NewMemoryStore()
	h := NewRegisterHandler(store, logging.New("error"))

	body := `{"name": "Ravi", "phone": "+91 98765 43210", "session_id": "s1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.UserID)
	assert.Equal(t, "s1", resp.SessionID)

	logged, err := store.History(context.Background(), "s1", 10)
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0].BotResponse, "Welcome Ravi")
}

func TestHandleRegisterGeneratesSessionID(t *testing.T) {
	h := NewRegisterHandler(nil, logging.New("error"))

	body := `{"name": "Ravi", "phone": "9876543210"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
}

func TestHandleRegisterValidation(t *testing.T) {
	h := NewRegisterHandler(nil, logging.New("error"))

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"phone": "9876543210"}`},
		{"missing phone", `{"name": "Ravi"}`},
		{"short phone", `{"name": "Ravi", "phone": "12345"}`},
		{"letters in phone", `{"name": "Ravi", "phone": "98765xyz10"}`},
		{"bad json", `{broken`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.HandleRegister(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
