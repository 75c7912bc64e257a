package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SreeKumarSeven/anthill-chatbot/pkg/logging"
)

type failingRepository struct{}

func (failingRepository) Create(ctx context.Context, b Booking) (Booking, error) {
	return Booking{}, errors.New("db down")
}

func (failingRepository) Recent(ctx context.Context, limit int) ([]Booking, error) {
	return nil, errors.New("db down")
}

type recordingNotifier struct {
	mu       sync.Mutex
	bookings []Booking
	notified chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{notified: make(chan struct{}, 4)}
}

func (n *recordingNotifier) BookingCreated(ctx context.Context, b Booking) error {
	n.mu.Lock()
	n.bookings = append(n.bookings, b)
	n.mu.Unlock()
	n.notified <- struct{}{}
	return nil
}

func TestServiceRespondAsksForContactDetails(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), nil, logging.New("error"))

	reply, startBooking := svc.Respond(context.Background(), "I want to book a meeting room", "u1")
	assert.True(t, startBooking)
	assert.Contains(t, reply, "name and phone number")
}

func TestServiceRespondSavesCompleteBooking(t *testing.T) {
	repo := NewInMemoryRepository()
	notifier := newRecordingNotifier()
	svc := NewService(repo, notifier, logging.New("error"))

	msg := "My name is Priya and I want to book a meeting room at Hulimavu, phone 987-654-3210"
	reply, startBooking := svc.Respond(context.Background(), msg, "u1")
	assert.False(t, startBooking)
	assert.Contains(t, reply, "Priya")
	assert.Contains(t, reply, "Meeting Room")
	assert.Contains(t, reply, "contact you shortly")

	saved, err := repo.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Priya", saved[0].Name)
	assert.Equal(t, "Hulimavu", saved[0].Location)
	assert.Equal(t, "New", saved[0].Status)
	assert.Equal(t, "chatbot", saved[0].Source)
	assert.Equal(t, "User ID: u1", saved[0].Notes)

	select {
	case <-notifier.notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier never called")
	}
}

func TestServiceRespondRepositoryFailure(t *testing.T) {
	svc := NewService(failingRepository{}, nil, logging.New("error"))

	reply, startBooking := svc.Respond(context.Background(), "My name is Priya, phone 987-654-3210, book a desk", "u1")
	assert.False(t, startBooking)
	assert.Contains(t, reply, "error saving your booking")
}

func TestServiceCreateValidatesRequiredFields(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), nil, logging.New("error"))

	_, err := svc.Create(context.Background(), Booking{Name: "Priya"})
	require.Error(t, err)

	saved, err := svc.Create(context.Background(), Booking{Name: "Priya", Phone: "9876543210"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "New", saved.Status)
	assert.Equal(t, "1", saved.Seats)
	assert.Equal(t, "Not specified", saved.Service)
}
