package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/chat"
	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

// ChatHandler serves the widget's message endpoint.
type ChatHandler struct {
	router *chat.Router
	logger *logging.Logger
}

// NewChatHandler creates a chat handler over the router pipeline.
func NewChatHandler(router *chat.Router, logger *logging.Logger) *ChatHandler {
	if router == nil {
		panic("handlers: chat router required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ChatHandler{router: router, logger: logger}
}

// HandleChat answers one chat message.
// POST /api/chat
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chat.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	resp, err := h.router.Handle(r.Context(), req)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			jsonError(w, "message cannot be empty", http.StatusBadRequest)
			return
		}
		h.logger.Error("chat handling failed", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
