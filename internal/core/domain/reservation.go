package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Reservation struct {
	ID            uuid.UUID
	RoomID        uuid.UUID
	GuestID       uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Status        ReservationStatus
	TotalPrice    float64
	BookingDate   time.Time
	PaymentStatus PaymentStatus
}

// Stay returns the reservation's date range.
func (r *Reservation) Stay() DateRange {
	return DateRange{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
}

// IsActive reports whether the reservation still holds its room for any
// part of its stay window.
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationConfirmed || r.Status == ReservationCheckedIn
}
