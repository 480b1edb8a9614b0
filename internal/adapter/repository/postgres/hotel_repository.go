package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/core/domain"
)

type HotelRepository struct {
	db *sql.DB
}

func NewHotelRepository(db *sql.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) GetHotel(ctx context.Context, hotelID uuid.UUID) (*domain.Hotel, error) {
	query := `
	SELECT id, name, stars, total_rooms
	FROM hotels
	WHERE id = $1
	`

	var hotel domain.Hotel
	err := r.db.QueryRowContext(ctx, query, hotelID).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Stars,
		&hotel.TotalRooms,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrHotelNotFound
		}
		return nil, err
	}

	roomQuery := `
	SELECT id, hotel_id, floor, room_number, room_type, price_per_night, max_occupancy, status
	FROM rooms
	WHERE hotel_id = $1
	ORDER BY room_number
	`

	rows, err := r.db.QueryContext(ctx, roomQuery, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	defer rows.Close()

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

		hotel.Rooms = append(hotel.Rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &hotel, nil
}
