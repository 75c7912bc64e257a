package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Booking is one persisted reservation lead.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Location  string    `json:"location"`
	Seats     string    `json:"seats"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository persists booking leads.
type Repository interface {
	Create(ctx context.Context, b Booking) (Booking, error)
	Recent(ctx context.Context, limit int) ([]Booking, error)
}

// InMemoryRepository is the fallback when no database is configured.
type InMemoryRepository struct {
	mu       sync.RWMutex
	bookings []Booking
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Create stores the booking and fills in ID, timestamps, and defaults.
func (r *InMemoryRepository) Create(ctx context.Context, b Booking) (Booking, error) {
	b = withDefaults(b)
	r.mu.Lock()
	r.bookings = append(r.bookings, b)
	r.mu.Unlock()
	return b, nil
}

// Recent returns the newest bookings first.
func (r *InMemoryRepository) Recent(ctx context.Context, limit int) ([]Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.bookings)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]Booking, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.bookings[i])
	}
	return out, nil
}

func withDefaults(b Booking) Booking {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if b.Status == "" {
		b.Status = "New"
	}
	if b.Source == "" {
		b.Source = "chatbot"
	}
	if b.Seats == "" {
		b.Seats = "1"
	}
	if b.Service == "" {
		b.Service = "Not specified"
	}
	if b.Location == "" {
		b.Location = "Not specified"
	}
	return b
}
