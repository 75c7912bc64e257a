package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/booking"
	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

// BookingHandler serves direct booking form submissions.
type BookingHandler struct {
	svc    *booking.Service
	logger *logging.Logger
}

// NewBookingHandler creates a booking handler.
func NewBookingHandler(svc *booking.Service, logger *logging.Logger) *BookingHandler {
	if svc == nil {
		panic("handlers: booking service required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingHandler{svc: svc, logger: logger}
}

// BookingRequest is the booking form payload.
type BookingRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Location string `json:"location"`
	Seats    string `json:"seats"`
	Message  string `json:"message,omitempty"`
	UserID   string `json:"user_id,omitempty"`
}

// BookingResponse confirms a stored booking.
type BookingResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
}

// HandleCreate stores a booking form submission.
// POST /api/booking
func (h *BookingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
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
	if req.Phone == "" {
		jsonError(w, "phone is required", http.StatusBadRequest)
		return
	}

	saved, err := h.svc.Create(r.Context(), booking.Booking{
		UserID:   req.UserID,
		Name:     req.Name,
		Email:    strings.TrimSpace(req.Email),
		Phone:    req.Phone,
		Service:  strings.TrimSpace(req.Service),
		Location: strings.TrimSpace(req.Location),
		Seats:    strings.TrimSpace(req.Seats),
		Message:  req.Message,
	})
	if err != nil {
		h.logger.Error("booking create failed", "error", err)
		jsonError(w, "error processing booking", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, BookingResponse{
		Status:    "success",
		Message:   "Booking request received successfully",
		BookingID: saved.ID,
	})
}
