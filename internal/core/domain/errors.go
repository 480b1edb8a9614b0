package domain

import (
	"errors"
)

var (
	// ErrHotelNotFound aborts a simulation run at start.
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrRoomUnavailable means the room no longer qualifies for the
	// requested stay window. Event-local: the caller skips the event.
	ErrRoomUnavailable = errors.New("room unavailable for requested dates")

	// ErrInvalidTransition means a lifecycle operation was applied to a
	// reservation in the wrong state. Event-local.
	ErrInvalidTransition = errors.New("invalid reservation state transition")

	// ErrReservationNotFound is returned by lookups on unknown ids.
	ErrReservationNotFound = errors.New("reservation not found")
)
