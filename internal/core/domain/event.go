package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventNewReservation EventType = "new_reservation"
	EventWalkIn         EventType = "walk_in"
	EventGroupBooking   EventType = "group_booking"
	EventExtendedStay   EventType = "extended_stay"
	EventLoyaltyBooking EventType = "loyalty_booking"
	EventCancellation   EventType = "cancellation"
	EventCheckIn        EventType = "check_in"
	EventCheckOut       EventType = "check_out"
	EventSpecialRequest EventType = "special_request"
	EventError          EventType = "error"
)

// BookingEventTypes lists the event categories that create reservations.
// The aggregator uses this set to derive guest counts and stay lengths.
var BookingEventTypes = []EventType{
	EventNewReservation,
	EventWalkIn,
	EventGroupBooking,
	EventExtendedStay,
	EventLoyaltyBooking,
}

func (t EventType) IsBooking() bool {
	for _, bt := range BookingEventTypes {
		if t == bt {
			return true
		}
	}
	return false
}

// SimulationEvent is one immutable log entry of a simulation run.
// Amount carries the booked value on booking events and the collected
// amount on check-out, special-request and cancellation events; Nights
// and Rooms are set on booking events only.
type SimulationEvent struct {
	Day           int
	Date          time.Time
	Type          EventType
	Description   string
	Amount        float64
	Nights        int
	Rooms         int
	GuestID       uuid.UUID
	RoomID        uuid.UUID
	ReservationID uuid.UUID
}

// SimulationResult aggregates one completed run: the full event log plus
// the derived counters computed by the statistics aggregator.
type SimulationResult struct {
	TotalDays         int
	TotalRooms        int
	EventCounts       map[EventType]int
	TotalGuests       int
	TotalReservations int
	TotalRevenue      float64
	RevenueByType     map[EventType]float64
	RevenuePerDay     float64
	GuestsPerDay      float64
	AverageStayNights float64
	CancellationRate  float64
	AverageOccupancy  float64
	RevPAR            float64
	BusiestDay        int
	SlowestDay        int
	Events            []SimulationEvent
}
