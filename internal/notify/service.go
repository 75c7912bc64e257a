package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/booking"
	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

// Service alerts the operations team when a booking lead arrives.
type Service struct {
	email      EmailSender
	alertEmail string
	logger     *logging.Logger
}

// NewService creates a notification service. email may be a stub sender;
// alertEmail is the operations inbox that receives booking alerts.
func NewService(email EmailSender, alertEmail string, logger *logging.Logger) *Service {
	if email == nil {
		panic("notify: email sender cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{email: email, alertEmail: alertEmail, logger: logger}
}

// BookingCreated emails the booking details to the operations inbox.
func (s *Service) BookingCreated(ctx context.Context, b booking.Booking) error {
	if s.alertEmail == "" {
		s.logger.Debug("notify: no alert email configured, skipping booking alert")
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "New booking request from the website chatbot.\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.Name)
	fmt.Fprintf(&sb, "Phone: %s\n", b.Phone)
	if b.Email != "" {
		fmt.Fprintf(&sb, "Email: %s\n", b.Email)
	}
	fmt.Fprintf(&sb, "Service: %s\n", b.Service)
	fmt.Fprintf(&sb, "Location: %s\n", b.Location)
	fmt.Fprintf(&sb, "Seats: %s\n", b.Seats)
	if b.Message != "" {
		fmt.Fprintf(&sb, "\nOriginal message:\n%s\n", b.Message)
	}

	msg := EmailMessage{
		To:      s.alertEmail,
		ToName:  "Anthill IQ Team",
		Subject: fmt.Sprintf("New booking request: %s (%s)", b.Name, b.Service),
		Body:    sb.String(),
	}
	if err := s.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify: booking alert: %w", err)
	}
	return nil
}
