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

	"github.com/SreeKumarSeven/anthill-chatbot/internal/booking"
	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

func newBookingHandler(t *testing.T) (*BookingHandler, *booking.InMemoryRepository) {
	t.Helper()
	repo := booking.NewInMemoryRepository()
	svc := booking.NewService(repo, nil, logging.New("error"))
	return NewBookingHandler(svc, logging.New("error")), repo
}

func TestHandleCreateBooking(t *testing.T) {
	h, repo := newBookingHandler(t)

	body := `{"name": "Priya", "email": "priya@example.com", "phone": "9876543210", "service": "Meeting Room", "location": "Hebbal", "seats": "4"}`
	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.BookingID)

	saved, err := repo.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Priya", saved[0].Name)
	assert.Equal(t, "Hebbal", saved[0].Location)
}

func TestHandleCreateBookingValidation(t *testing.T) {
	h, _ := newBookingHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"phone": "9876543210"}`},
		{"missing phone", `{"name": "Priya"}`},
		{"bad json", `{broken`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.HandleCreate(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
