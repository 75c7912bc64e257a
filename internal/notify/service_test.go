package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SreeKumarSeven/anthill-chatbot/internal/booking"
)

type mockEmailSender struct {
	sent    []EmailMessage
	callErr error
}

func (m *mockEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	if m.callErr != nil {
		return m.callErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

func TestNewService_PanicsOnNilSender(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic with nil email sender")
		}
	}()
	NewService(nil, "team@anthilliq.com", nil)
}

func TestService_BookingCreated_SkipsWithoutAlertEmail(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewService(sender, "", nil)

	err := svc.BookingCreated(context.Background(), booking.Booking{
		Name:  "Ravi Kumar",
		Phone: "9876543210",
	})

	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
	if len(sender.sent) > 0 {
		t.Error("expected no email when alert address is not configured")
	}
}

func TestService_BookingCreated_BodyFields(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewService(sender, "team@anthilliq.com", nil)

	err := svc.BookingCreated(context.Background(), booking.Booking{
		Name:     "Ravi Kumar",
		Phone:    "9876543210",
		Email:    "ravi@example.com",
		Service:  "Private Office",
		Location: "Hebbal",
		Seats:    "4",
		Message:  "I want to book a private office in Hebbal for my team",
	})

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(sender.sent))
	}

	email := sender.sent[0]
	if email.To != "team@anthilliq.com" {
		t.Errorf("expected email to team@anthilliq.com, got %s", email.To)
	}
	if !strings.Contains(email.Subject, "Ravi Kumar") || !strings.Contains(email.Subject, "Private Office") {
		t.Errorf("expected subject with name and service, got %q", email.Subject)
	}
	for _, want := range []string{"Ravi Kumar", "9876543210", "ravi@example.com", "Private Office", "Hebbal", "Seats: 4", "I want to book a private office"} {
		if !strings.Contains(email.Body, want) {
			t.Errorf("expected body to contain %q, got %q", want, email.Body)
		}
	}
}

func TestService_BookingCreated_OmitsEmptyFields(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewService(sender, "team@anthilliq.com", nil)

	err := svc.BookingCreated(context.Background(), booking.Booking{
		Name:     "Priya",
		Phone:    "9876543210",
		Service:  "Not specified",
		Location: "Not specified",
		Seats:    "1",
	})

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	body := sender.sent[0].Body
	if strings.Contains(body, "Email:") {
		t.Errorf("expected no email line for empty address, got %q", body)
	}
	if strings.Contains(body, "Original message:") {
		t.Errorf("expected no message section for empty message, got %q", body)
	}
}

func TestService_BookingCreated_EmailFailure(t *testing.T) {
	sender := &mockEmailSender{callErr: errors.New("sendgrid down")}
	svc := NewService(sender, "team@anthilliq.com", nil)

	err := svc.BookingCreated(context.Background(), booking.Booking{
		Name:  "Ravi Kumar",
		Phone: "9876543210",
	})

	if err == nil {
		t.Error("expected error when email send fails")
	}
}
