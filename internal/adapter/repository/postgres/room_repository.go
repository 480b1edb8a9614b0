package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/core/domain"
	"github.com/hotelops/simulator/internal/core/ports"
)

type RoomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// FindAvailable returns the hotel's rooms with no confirmed or checked-in
// reservation overlapping the stay window. Rooms under maintenance never
// qualify. Results are ordered by room number so callers see a stable
// sequence.
func (r *RoomRepository) FindAvailable(ctx context.Context, hotelID uuid.UUID, stay domain.DateRange, filter ports.RoomFilter) ([]domain.Room, error) {
	query := `
	SELECT rm.id, rm.hotel_id, rm.floor, rm.room_number, rm.room_type, rm.price_per_night, rm.max_occupancy, rm.status
	FROM rooms rm
	WHERE rm.hotel_id = $1
	AND rm.status <> 'maintenance'
	AND NOT EXISTS (
		SELECT 1
		FROM reservations res
		WHERE res.room_id = rm.id
		AND res.status IN ('confirmed', 'checked_in')
		AND res.check_in_date < $3
		AND res.check_out_date > $2
	)
	`

	args := []any{hotelID, stay.CheckIn, stay.CheckOut}

	if filter.RoomType != "" {
		args = append(args, filter.RoomType)
		query += fmt.Sprintf(" AND rm.room_type = $%d", len(args))
	}

	if filter.Floor > 0 {
		args = append(args, filter.Floor)
		query += fmt.Sprintf(" AND rm.floor = $%d", len(args))
	}

	query += " ORDER BY rm.room_number"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(
			&room.ID,
			&room.HotelID,
			&room.Floor,
			&room.RoomNumber,
			&room.RoomType,
			&room.PricePerNight,
			&room.MaxOccupancy,
			&room.Status,
		); err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, roomID uuid.UUID, status domain.RoomStatus) error {
	query := `
	UPDATE rooms
	SET status = $1
	WHERE id = $2
	`

	_, err := r.db.ExecContext(ctx, query, status, roomID)

	return err
}
