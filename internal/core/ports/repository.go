package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/core/domain"
)

// RoomFilter narrows an availability query. Zero values mean "no filter".
type RoomFilter struct {
	RoomType string
	Floor    int
	MinRooms int
}

type HotelRepository interface {
	GetHotel(ctx context.Context, hotelID uuid.UUID) (*domain.Hotel, error)
}

type RoomRepository interface {
	FindAvailable(ctx context.Context, hotelID uuid.UUID, stay domain.DateRange, filter RoomFilter) ([]domain.Room, error)
	UpdateStatus(ctx context.Context, roomID uuid.UUID, status domain.RoomStatus) error
}

type ReservationRepository interface {
	Insert(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, status domain.ReservationStatus, payment domain.PaymentStatus) error
	ScheduledCheckIns(ctx context.Context, hotelID uuid.UUID, date time.Time) ([]domain.Reservation, error)
	ScheduledCheckOuts(ctx context.Context, hotelID uuid.UUID, date time.Time) ([]domain.Reservation, error)
	Cancellable(ctx context.Context, hotelID uuid.UUID, after time.Time) ([]domain.Reservation, error)
	CheckedIn(ctx context.Context, hotelID uuid.UUID, onOrAfter time.Time) ([]domain.Reservation, error)
}

type TransactionRepository interface {
	Insert(ctx context.Context, transaction *domain.Transaction) error
}

type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) error
	ExistingIDs(ctx context.Context) ([]uuid.UUID, error)
}
