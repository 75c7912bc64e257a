package handlers

import (
	"errors"
	"net/http"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/booking"
	"github.com/SreeKumarSeven/anthill-chatbot/internal/transcript"
	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

// statsSampleSize bounds how many recent rows feed the stats aggregation.
const statsSampleSize = 1000

// StatsHandler aggregates recent activity for the admin dashboard.
type StatsHandler struct {
	store    transcript.Store
	bookings booking.Repository
	logger   *logging.Logger
}

// NewStatsHandler creates a stats handler. bookings may be nil.
func NewStatsHandler(store transcript.Store, bookings booking.Repository, logger *logging.Logger) *StatsHandler {
	if store == nil {
		panic("handlers: transcript store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsHandler{store: store, bookings: bookings, logger: logger}
}

// StatsResponse summarizes recent chatbot usage.
type StatsResponse struct {
	Conversations  int            `json:"conversations"`
	BySource       map[string]int `json:"by_source"`
	UniqueSessions int            `json:"unique_sessions"`
	Bookings       int            `json:"bookings"`
}

// HandleStats returns usage counters over the most recent exchanges.
// GET /api/stats (admin JWT required)
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.Recent(r.Context(), statsSampleSize)
	if err != nil {
		if errors.Is(err, transcript.ErrNotSupported) {
			jsonError(w, "stats not available on this deployment", http.StatusNotImplemented)
			return
		}
		h.logger.Error("stats lookup failed", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	bySource := make(map[string]int)
	sessions := make(map[string]struct{})
	for _, e := range entries {
		bySource[e.Source]++
		sessions[e.SessionID] = struct{}{}
	}

	resp := StatsResponse{
		Conversations:  len(entries),
		BySource:       bySource,
		UniqueSessions: len(sessions),
	}
	if h.bookings != nil {
		recent, err := h.bookings.Recent(r.Context(), statsSampleSize)
		if err != nil {
			h.logger.Warn("booking stats lookup failed", "error", err)
		} else {
			resp.Bookings = len(recent)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
