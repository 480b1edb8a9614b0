package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/core/domain"
)

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const reservationColumns = "id, room_id, guest_id, check_in_date, check_out_date, status, total_price, booking_date, payment_status"

func (r *ReservationRepository) Insert(ctx context.Context, reservation *domain.Reservation) error {
	query := `
	INSERT INTO reservations (id, room_id, guest_id, check_in_date, check_out_date, status, total_price, booking_date, payment_status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		reservation.ID,
		reservation.RoomID,
		reservation.GuestID,
		reservation.CheckIn,
		reservation.CheckOut,
		reservation.Status,
		reservation.TotalPrice,
		reservation.BookingDate,
		reservation.PaymentStatus,
	)

	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error) {
	query := `
	SELECT ` + reservationColumns + `
	FROM reservations
	WHERE id = $1
	`

	reservation, err := scanReservation(r.db.QueryRowContext(ctx, query, reservationID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}

	return reservation, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status domain.ReservationStatus, payment domain.PaymentStatus) error {
	query := `
	UPDATE reservations
	SET status = $1, payment_status = $2
	WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, payment, reservationID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) ScheduledCheckIns(ctx context.Context, hotelID uuid.UUID, date time.Time) ([]domain.Reservation, error) {
	query := `
	SELECT ` + qualifiedReservationColumns + `
	FROM reservations res
	JOIN rooms rm ON res.room_id = rm.id
	WHERE rm.hotel_id = $1
	AND res.check_in_date = $2
	AND res.status = 'confirmed'
	ORDER BY res.booking_date, res.id
	`

	return r.queryReservations(ctx, query, hotelID, date)
}

func (r *ReservationRepository) ScheduledCheckOuts(ctx context.Context, hotelID uuid.UUID, date time.Time) ([]domain.Reservation, error) {
	query := `
	SELECT ` + qualifiedReservationColumns + `
	FROM reservations res
	JOIN rooms rm ON res.room_id = rm.id
	WHERE rm.hotel_id = $1
	AND res.check_out_date = $2
	AND res.status = 'checked_in'
	ORDER BY res.booking_date, res.id
	`

	return r.queryReservations(ctx, query, hotelID, date)
}

// Cancellable lists confirmed reservations whose stay has not started:
// cancellation is only offered before the check-in day.
func (r *ReservationRepository) Cancellable(ctx context.Context, hotelID uuid.UUID, after time.Time) ([]domain.Reservation, error) {
	query := `
	SELECT ` + qualifiedReservationColumns + `
	FROM reservations res
	JOIN rooms rm ON res.room_id = rm.id
	WHERE rm.hotel_id = $1
	AND res.check_in_date > $2
	AND res.status = 'confirmed'
	ORDER BY res.booking_date, res.id
	`

	return r.queryReservations(ctx, query, hotelID, after)
}

func (r *ReservationRepository) CheckedIn(ctx context.Context, hotelID uuid.UUID, onOrAfter time.Time) ([]domain.Reservation, error) {
	query := `
	SELECT ` + qualifiedReservationColumns + `
	FROM reservations res
	JOIN rooms rm ON res.room_id = rm.id
	WHERE rm.hotel_id = $1
	AND res.check_out_date >= $2
	AND res.status = 'checked_in'
	ORDER BY res.booking_date, res.id
	`

	return r.queryReservations(ctx, query, hotelID, onOrAfter)
}

const qualifiedReservationColumns = "res.id, res.room_id, res.guest_id, res.check_in_date, res.check_out_date, res.status, res.total_price, res.booking_date, res.payment_status"

func (r *ReservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}

		reservations = append(reservations, *reservation)
	}

	return reservations, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.RoomID,
		&reservation.GuestID,
		&reservation.CheckIn,
		&reservation.CheckOut,
		&reservation.Status,
		&reservation.TotalPrice,
		&reservation.BookingDate,
		&reservation.PaymentStatus,
	)
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}
