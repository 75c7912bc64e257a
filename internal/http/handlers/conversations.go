package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/transcript"
	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

const defaultHistoryLimit = 50

// ConversationHandler exposes per-session transcript history.
type ConversationHandler struct {
	store  transcript.Store
	logger *logging.Logger
}

// NewConversationHandler creates a conversation history handler.
func NewConversationHandler(store transcript.Store, logger *logging.Logger) *ConversationHandler {
	if store == nil {
		panic("handlers: transcript store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ConversationHandler{store: store, logger: logger}
}

// HandleHistory returns the logged exchanges for one session, oldest first.
// GET /api/conversation/{sessionID}
func (h *ConversationHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		jsonError(w, "missing session id", http.StatusBadRequest)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			jsonError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.store.History(r.Context(), sessionID, limit)
	if err != nil {
		if errors.Is(err, transcript.ErrNotSupported) {
			jsonError(w, "history not available on this deployment", http.StatusNotImplemented)
			return
		}
		h.logger.Error("history lookup failed", "error", err, "session_id", sessionID)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"messages":   entries,
	})
}
