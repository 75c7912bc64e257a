package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

const notifyTimeout = 5 * time.Second

const (
	needInfoReply = "I need more information to complete your booking. Could you please provide your name and phone number?"
	saveFailReply = "I encountered an error saving your booking. Please try again or contact our team directly."
)

// Notifier alerts the operations team about a new booking.
type Notifier interface {
	BookingCreated(ctx context.Context, b Booking) error
}

// Service runs the booking flow: pull details out of the message, persist
// the lead, and alert the team.
type Service struct {
	repo     Repository
	notifier Notifier
	logger   *logging.Logger
}

// NewService creates a booking service. notifier may be nil when alerts are
// disabled.
func NewService(repo Repository, notifier Notifier, logger *logging.Logger) *Service {
	if repo == nil {
		panic("booking: repository cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

// Respond handles a chat message already classified as a booking request.
// When name and phone are both present the lead is saved and confirmed;
// otherwise the reply asks for them and startBooking signals the widget to
// open its booking form.
func (s *Service) Respond(ctx context.Context, message, userID string) (reply string, startBooking bool) {
	fields := Extract(message)
	if fields.Name == "" || fields.Phone == "" {
		return needInfoReply, true
	}

	b := Booking{
		UserID:   userID,
		Name:     fields.Name,
		Email:    fields.Email,
		Phone:    fields.Phone,
		Service:  fields.Service,
		Location: fields.Location,
		Seats:    fields.Seats,
		Message:  message,
	}
	if userID != "" {
		b.Notes = "User ID: " + userID
	}

	saved, err := s.repo.Create(ctx, b)
	if err != nil {
		s.logger.Error("booking save failed", "error", err, "user_id", userID)
		return saveFailReply, false
	}

	s.notifyAsync(saved)
	return confirmationReply(saved), false
}

// Create persists a booking submitted through the booking form endpoint.
func (s *Service) Create(ctx context.Context, b Booking) (Booking, error) {
	if b.Name == "" || b.Phone == "" {
		return Booking{}, fmt.Errorf("booking: name and phone are required")
	}

	saved, err := s.repo.Create(ctx, b)
	if err != nil {
		return Booking{}, err
	}
	s.notifyAsync(saved)
	return saved, nil
}

// notifyAsync fires the team alert without blocking the caller. Alert
// failures are logged and dropped.
func (s *Service) notifyAsync(b Booking) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.BookingCreated(ctx, b); err != nil {
			s.logger.Error("booking alert failed", "error", err, "booking_id", b.ID)
		}
	}()
}

func confirmationReply(b Booking) string {
	return fmt.Sprintf("Thank you for your booking request! I've saved the following details:\n\n"+
		"Name: %s\nPhone: %s\nService: %s\nLocation: %s\nSeats: %s\n\n"+
		"Our team will contact you shortly to confirm your booking.",
		b.Name, b.Phone, b.Service, b.Location, b.Seats)
}
