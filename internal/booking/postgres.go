package booking

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository persists bookings in the bookings table.
type PostgresRepository struct {
	pool db
}

// NewPostgresRepository initializes a repository backed by a pgx pool.
func NewPostgresRepository(pool db) *PostgresRepository {
	if pool == nil {
		panic("booking: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

// Create inserts one booking lead.
func (r *PostgresRepository) Create(ctx context.Context, b Booking) (Booking, error) {
	b = withDefaults(b)

	query := `
		INSERT INTO bookings (id, user_id, name, email, phone, service, location, seats, message, status, source, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	if _, err := r.pool.Exec(ctx, query,
		b.ID, b.UserID, b.Name, b.Email, b.Phone,
		b.Service, b.Location, b.Seats, b.Message,
		b.Status, b.Source, b.Notes, b.CreatedAt,
	); err != nil {
		return Booking{}, fmt.Errorf("booking: insert failed: %w", err)
	}
	return b, nil
}

// Recent returns the newest bookings first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]Booking, error) {
	query := `
		SELECT id, user_id, name, email, phone, service, location, seats, message, status, source, notes, created_at
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("booking: select failed: %w", err)
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Name, &b.Email, &b.Phone,
			&b.Service, &b.Location, &b.Seats, &b.Message,
			&b.Status, &b.Source, &b.Notes, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("booking: scan failed: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("booking: rows failed: %w", err)
	}
	return out, nil
}
