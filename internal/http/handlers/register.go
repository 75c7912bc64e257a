package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/transcript"
	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)

// RegisterHandler records widget users before their first chat turn.
type RegisterHandler struct {
	store  transcript.Store
	logger *logging.Logger
}

// NewRegisterHandler creates a registration handler. store may be nil when
// transcripts are disabled.
func NewRegisterHandler(store transcript.Store, logger *logging.Logger) *RegisterHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &RegisterHandler{store: store, logger: logger}
}

// RegisterRequest is the widget registration payload.
type RegisterRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	SessionID string `json:"session_id,omitempty"`
}

// RegisterResponse returns the identifiers the widget should use for the
// rest of the session.
type RegisterResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// HandleRegister validates and stores a widget user.
// POST /api/register
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" {
		jsonError(w, "name is required", http.StatusBadRequest)
		return
	}
	if !phonePattern.MatchString(req.Phone) {
		jsonError(w, "phone number is invalid", http.StatusBadRequest)
		return
	}

	userID := uuid.NewString()
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// Seed the transcript with the welcome turn so the admin view shows the
	// full conversation. Best-effort.
	if h.store != nil {
		err := h.store.Log(r.Context(), transcript.Entry{
			SessionID:   sessionID,
			UserID:      userID,
			UserMessage: "[registered: " + req.Name + " / " + req.Phone + "]",
			BotResponse: "Welcome " + req.Name + "! I'm the Anthill IQ Assistant. How can I help you today?",
			Source:      "rule_based",
		})
		if err != nil {
			h.logger.Warn("registration log failed", "error", err, "session_id", sessionID)
		}
	}

	writeJSON(w, http.StatusOK, RegisterResponse{
		Status:    "success",
		Message:   "User registration successful",
		UserID:    userID,
		SessionID: sessionID,
	})
}
