package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/core/domain"
	"github.com/hotelops/simulator/internal/core/ports"
)

// The store carries all tables, so the reservation and transaction ports
// are exposed through small views to keep method sets apart.

func (s *Store) HotelRepo() ports.HotelRepository             { return s }
func (s *Store) RoomRepo() ports.RoomRepository               { return s }
func (s *Store) ReservationRepo() ports.ReservationRepository { return reservationView{s} }
func (s *Store) TransactionRepo() ports.TransactionRepository { return transactionView{s} }
func (s *Store) GuestRepo() ports.GuestRepository             { return s }

type reservationView struct {
	s *Store
}

func (v reservationView) Insert(ctx context.Context, reservation *domain.Reservation) error {
	return v.s.Insert(ctx, reservation)
}

func (v reservationView) GetByID(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error) {
	return v.s.GetByID(ctx, reservationID)
}

func (v reservationView) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status domain.ReservationStatus, payment domain.PaymentStatus) error {
	return v.s.UpdateReservationStatus(ctx, reservationID, status, payment)
}

func (v reservationView) ScheduledCheckIns(ctx context.Context, hotelID uuid.UUID, date time.Time) ([]domain.Reservation, error) {
	return v.s.ScheduledCheckIns(ctx, hotelID, date)
}

func (v reservationView) ScheduledCheckOuts(ctx context.Context, hotelID uuid.UUID, date time.Time) ([]domain.Reservation, error) {
	return v.s.ScheduledCheckOuts(ctx, hotelID, date)
}

func (v reservationView) Cancellable(ctx context.Context, hotelID uuid.UUID, after time.Time) ([]domain.Reservation, error) {
	return v.s.Cancellable(ctx, hotelID, after)
}

func (v reservationView) CheckedIn(ctx context.Context, hotelID uuid.UUID, onOrAfter time.Time) ([]domain.Reservation, error) {
	return v.s.CheckedIn(ctx, hotelID, onOrAfter)
}

type transactionView struct {
	s *Store
}

func (v transactionView) Insert(ctx context.Context, transaction *domain.Transaction) error {
	return v.s.InsertTransaction(ctx, transaction)
}
