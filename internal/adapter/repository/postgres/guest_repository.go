package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/core/domain"
)

type GuestRepository struct {
	db *sql.DB
}

func NewGuestRepository(db *sql.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	query := `
	INSERT INTO guests (id, first_name, last_name, email, phone, loyalty_points)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		guest.ID,
		guest.FirstName,
		guest.LastName,
		guest.Email,
		guest.Phone,
		guest.LoyaltyPoints,
	)

	if err != nil {
		return fmt.Errorf("failed to insert guest: %w", err)
	}

	return nil
}

// ExistingIDs returns every known guest id in a stable order so a seeded
// run picks returning guests deterministically.
func (r *GuestRepository) ExistingIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `
	SELECT id FROM guests
	ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}
