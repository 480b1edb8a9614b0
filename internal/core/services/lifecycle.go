package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/core/domain"
	"github.com/hotelops/simulator/internal/core/ports"
)

// SpecialRequestKind enumerates the extra services a checked-in guest can
// order. Each carries a fixed fee billed as an independent charge.
type SpecialRequestKind string

const (
	RequestRoomUpgrade    SpecialRequestKind = "room_upgrade"
	RequestLateCheckout   SpecialRequestKind = "late_checkout"
	RequestExtraAmenities SpecialRequestKind = "extra_amenities"
	RequestRoomService    SpecialRequestKind = "room_service"
)

// SpecialRequestKinds lists every kind in a stable order for random picks.
var SpecialRequestKinds = []SpecialRequestKind{
	RequestRoomUpgrade,
	RequestLateCheckout,
	RequestExtraAmenities,
	RequestRoomService,
}

var specialRequestFees = map[SpecialRequestKind]float64{
	RequestRoomUpgrade:    50.00,
	RequestLateCheckout:   25.00,
	RequestExtraAmenities: 35.00,
	RequestRoomService:    45.00,
}

// ReservationLifecycle owns every reservation and room status transition
// for one hotel: confirmed -> checked_in -> checked_out, or confirmed ->
// cancelled. When a later write of a transition fails, the already applied
// writes are compensated so the transition is observed as all-or-nothing.
type ReservationLifecycle struct {
	hotelID         uuid.UUID
	roomRepo        ports.RoomRepository
	reservationRepo ports.ReservationRepository
	transactionRepo ports.TransactionRepository
	availability    *AvailabilityService
	newID           func() uuid.UUID
}

func NewReservationLifecycle(
	hotelID uuid.UUID,
	roomRepo ports.RoomRepository,
	reservationRepo ports.ReservationRepository,
	transactionRepo ports.TransactionRepository,
	availability *AvailabilityService,
	newID func() uuid.UUID,
) *ReservationLifecycle {
	return &ReservationLifecycle{
		hotelID:         hotelID,
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
		availability:    availability,
		newID:           newID,
	}
}

// Create books a room for the given guest and stay window. The room is
// re-verified against the availability index immediately before booking;
// a same-day race surfaces as ErrRoomUnavailable and the caller skips the
// event. The room is marked reserved only for same-day arrivals: advance
// bookings do not lock the room before its check-in day.
func (l *ReservationLifecycle) Create(ctx context.Context, guestID uuid.UUID, room domain.Room, stay domain.DateRange, today time.Time, discount float64) (*domain.Reservation, error) {
	free, err := l.availability.FindAvailable(ctx, room.HotelID, stay, ports.RoomFilter{})
	if err != nil {
		return nil, err
	}

	if !containsRoom(free, room.ID) {
		return nil, domain.ErrRoomUnavailable
	}

	price := room.PricePerNight * float64(stay.Nights()) * (1 - discount)

	reservation := &domain.Reservation{
		ID:            l.newID(),
		RoomID:        room.ID,
		GuestID:       guestID,
		CheckIn:       stay.CheckIn,
		CheckOut:      stay.CheckOut,
		Status:        domain.ReservationConfirmed,
		TotalPrice:    roundCents(price),
		BookingDate:   today,
		PaymentStatus: domain.PaymentPending,
	}

	sameDay := stay.CheckIn.Equal(today)
	if sameDay {
		if err := l.roomRepo.UpdateStatus(ctx, room.ID, domain.RoomReserved); err != nil {
			return nil, fmt.Errorf("failed to reserve room %s: %w", room.RoomNumber, err)
		}
	}

	if err := l.reservationRepo.Insert(ctx, reservation); err != nil {
		if sameDay {
			_ = l.roomRepo.UpdateStatus(ctx, room.ID, domain.RoomAvailable)
		}
		return nil, fmt.Errorf("failed to insert reservation: %w", err)
	}

	l.availability.Invalidate(ctx, room.HotelID)

	return reservation, nil
}

// CheckIn moves a confirmed reservation to checked_in and occupies its
// room. Valid only on or after the reservation's check-in date.
func (l *ReservationLifecycle) CheckIn(ctx context.Context, reservationID uuid.UUID, today time.Time) (*domain.Reservation, error) {
	reservation, err := l.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.Status != domain.ReservationConfirmed || today.Before(reservation.CheckIn) {
		return nil, domain.ErrInvalidTransition
	}

	if err := l.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationCheckedIn, reservation.PaymentStatus); err != nil {
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
	}

	if err := l.roomRepo.UpdateStatus(ctx, reservation.RoomID, domain.RoomOccupied); err != nil {
		_ = l.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationConfirmed, reservation.PaymentStatus)
		return nil, fmt.Errorf("failed to occupy room: %w", err)
	}

	reservation.Status = domain.ReservationCheckedIn
	return reservation, nil
}

// CheckOut settles a checked-in reservation: the full stay price is
// collected as a payment transaction, the reservation reaches its
// terminal checked_out state and the room is released. Returns the amount
// charged.
func (l *ReservationLifecycle) CheckOut(ctx context.Context, reservationID uuid.UUID, today time.Time) (*domain.Reservation, float64, error) {
	reservation, err := l.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, 0, err
	}

	if reservation.Status != domain.ReservationCheckedIn {
		return nil, 0, domain.ErrInvalidTransition
	}

	amount := reservation.TotalPrice

	if err := l.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationCheckedOut, domain.PaymentPaid); err != nil {
		return nil, 0, fmt.Errorf("failed to update reservation status: %w", err)
	}

	if err := l.roomRepo.UpdateStatus(ctx, reservation.RoomID, domain.RoomAvailable); err != nil {
		_ = l.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationCheckedIn, domain.PaymentPending)
		return nil, 0, fmt.Errorf("failed to release room: %w", err)
	}

	transaction := &domain.Transaction{
		ID:            l.newID(),
		ReservationID: reservationID,
		Amount:        amount,
		Type:          domain.TransactionPayment,
		Date:          today,
		Description:   "Final payment for stay",
	}

	if err := l.transactionRepo.Insert(ctx, transaction); err != nil {
		_ = l.roomRepo.UpdateStatus(ctx, reservation.RoomID, domain.RoomOccupied)
		_ = l.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationCheckedIn, domain.PaymentPending)
		return nil, 0, fmt.Errorf("failed to record payment: %w", err)
	}

	l.availability.Invalidate(ctx, l.hotelID)

	reservation.Status = domain.ReservationCheckedOut
	reservation.PaymentStatus = domain.PaymentPaid
	return reservation, amount, nil
}

// Cancel voids a confirmed reservation before its guest has checked in.
// Nothing has been collected at that point, so no refund transaction is
// written; the room is released only if this reservation had already
// marked it reserved (same-day bookings).
func (l *ReservationLifecycle) Cancel(ctx context.Context, reservationID uuid.UUID, today time.Time) (*domain.Reservation, error) {
	reservation, err := l.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.Status != domain.ReservationConfirmed {
		return nil, domain.ErrInvalidTransition
	}

	if err := l.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationCancelled, reservation.PaymentStatus); err != nil {
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if !reservation.CheckIn.After(today) {
		if err := l.roomRepo.UpdateStatus(ctx, reservation.RoomID, domain.RoomAvailable); err != nil {
			_ = l.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationConfirmed, reservation.PaymentStatus)
			return nil, fmt.Errorf("failed to release room: %w", err)
		}
	}

	l.availability.Invalidate(ctx, l.hotelID)

	reservation.Status = domain.ReservationCancelled
	return reservation, nil
}

// ApplySpecialRequest bills a fixed-fee extra service to a checked-in
// reservation as an independent charge transaction. Neither the
// reservation nor the room changes state.
func (l *ReservationLifecycle) ApplySpecialRequest(ctx context.Context, reservationID uuid.UUID, kind SpecialRequestKind, today time.Time) (float64, error) {
	fee, ok := specialRequestFees[kind]
	if !ok {
		return 0, fmt.Errorf("unknown special request kind %q", kind)
	}

	reservation, err := l.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return 0, err
	}

	if reservation.Status != domain.ReservationCheckedIn {
		return 0, domain.ErrInvalidTransition
	}

	transaction := &domain.Transaction{
		ID:            l.newID(),
		ReservationID: reservationID,
		Amount:        fee,
		Type:          domain.TransactionCharge,
		Date:          today,
		Description:   fmt.Sprintf("Special request: %s", kind),
	}

	if err := l.transactionRepo.Insert(ctx, transaction); err != nil {
		return 0, fmt.Errorf("failed to record charge: %w", err)
	}

	return fee, nil
}

func containsRoom(rooms []domain.Room, id uuid.UUID) bool {
	for _, room := range rooms {
		if room.ID == id {
			return true
		}
	}
	return false
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
