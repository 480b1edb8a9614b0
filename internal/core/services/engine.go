package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/core/domain"
	"github.com/hotelops/simulator/internal/core/ports"
)

type EngineState string

const (
	EngineInitialized EngineState = "initialized"
	EngineRunning     EngineState = "running"
	EngineCompleted   EngineState = "completed"
)

// Stay and lead-time windows per booking category, in days. Lead times
// start at 1 so advance bookings are picked up by the scheduled check-in
// scan on their arrival day; walk-ins check in inline instead.
const (
	standardLeadMin, standardLeadMax = 1, 7
	standardStayMin, standardStayMax = 1, 7
	walkInStayMin, walkInStayMax     = 1, 3
	groupLeadMin, groupLeadMax       = 1, 3
	groupStayMin, groupStayMax       = 2, 5
	groupSizeMin, groupSizeMax       = 3, 6
	extendedLeadMin, extendedLeadMax = 1, 7
	extendedStayMin, extendedStayMax = 7, 14
	loyaltyLeadMin, loyaltyLeadMax   = 1, 5
	loyaltyStayMin, loyaltyStayMax   = 2, 5
)

// SimulationEngine advances one hotel's state day by day, resolving the
// policy's decisions against the availability index, the guest factory
// and the reservation lifecycle. Within a day the stages run in a fixed
// order so that rooms freed by cancellations and check-outs can be
// re-booked the same day without racing: cancellations, check-outs,
// special requests, check-ins, then the five booking categories.
type SimulationEngine struct {
	hotelID         uuid.UUID
	hotelRepo       ports.HotelRepository
	reservationRepo ports.ReservationRepository
	availability    *AvailabilityService
	lifecycle       *ReservationLifecycle
	guests          *GuestFactory
	cfg             SimulationConfig
	rng             *rand.Rand
	startDate       time.Time
	state           EngineState
	events          []domain.SimulationEvent
}

// NewSimulationEngine builds a single-run engine. The shared rng fully
// determines the random stream, including generated entity IDs: identical
// seed, config and starting store state reproduce an identical event log.
func NewSimulationEngine(
	hotelID uuid.UUID,
	hotelRepo ports.HotelRepository,
	reservationRepo ports.ReservationRepository,
	availability *AvailabilityService,
	lifecycle *ReservationLifecycle,
	guests *GuestFactory,
	cfg SimulationConfig,
	startDate time.Time,
	rng *rand.Rand,
) *SimulationEngine {
	return &SimulationEngine{
		hotelID:         hotelID,
		hotelRepo:       hotelRepo,
		reservationRepo: reservationRepo,
		availability:    availability,
		lifecycle:       lifecycle,
		guests:          guests,
		cfg:             cfg,
		rng:             rng,
		startDate:       startDate,
		state:           EngineInitialized,
	}
}

// Run simulates the given number of days and returns the aggregated
// result. Only a failure to load the hotel at start is fatal; every
// per-event failure is caught, recorded as an error event and skipped.
// An engine runs exactly once.
func (e *SimulationEngine) Run(ctx context.Context, days int) (*domain.SimulationResult, error) {
	if e.state != EngineInitialized {
		return nil, errors.New("simulation engine already used; build a new one per run")
	}

	hotel, err := e.hotelRepo.GetHotel(ctx, e.hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hotel %s: %w", e.hotelID, err)
	}

	e.state = EngineRunning

	for day := 1; day <= days; day++ {
		date := e.startDate.AddDate(0, 0, day)
		decisions := DecideDay(e.cfg, date, e.rng)

		before := len(e.events)

		e.resolveCancellation(ctx, day, date, decisions)
		e.resolveCheckOuts(ctx, day, date)
		e.resolveSpecialRequest(ctx, day, date, decisions)
		e.resolveCheckIns(ctx, day, date)

		if decisions.NewReservation {
			e.resolveBooking(ctx, day, date, domain.EventNewReservation, standardLeadMin, standardLeadMax, standardStayMin, standardStayMax)
		}
		if decisions.WalkIn {
			e.resolveBooking(ctx, day, date, domain.EventWalkIn, 0, 0, walkInStayMin, walkInStayMax)
		}
		if decisions.GroupBooking {
			e.resolveGroupBooking(ctx, day, date)
		}
		if decisions.ExtendedStay {
			e.resolveBooking(ctx, day, date, domain.EventExtendedStay, extendedLeadMin, extendedLeadMax, extendedStayMin, extendedStayMax)
		}
		if decisions.LoyaltyBooking {
			e.resolveBooking(ctx, day, date, domain.EventLoyaltyBooking, loyaltyLeadMin, loyaltyLeadMax, loyaltyStayMin, loyaltyStayMax)
		}

		if e.cfg.Verbose {
			log.Printf("Day %d (%s, %s): %d events", day, date.Weekday(), date.Format(dateLayout), len(e.events)-before)
		}
	}

	e.state = EngineCompleted

	return Aggregate(e.events, days, hotel.TotalRooms), nil
}

// Events exposes the raw event log of a completed run for export.
func (e *SimulationEngine) Events() []domain.SimulationEvent {
	return e.events
}

func (e *SimulationEngine) resolveCancellation(ctx context.Context, day int, date time.Time, decisions Decisions) {
	if !decisions.Cancellation {
		return
	}

	candidates, err := e.reservationRepo.Cancellable(ctx, e.hotelID, date)
	if err != nil {
		e.recordError(day, date, "listing cancellable reservations", err)
		return
	}
	if len(candidates) == 0 {
		return
	}

	picked := candidates[e.rng.Intn(len(candidates))]

	reservation, err := e.lifecycle.Cancel(ctx, picked.ID, date)
	if err != nil {
		e.recordError(day, date, "cancelling reservation", err)
		return
	}

	e.append(domain.SimulationEvent{
		Day:           day,
		Date:          date,
		Type:          domain.EventCancellation,
		Description:   "Reservation cancelled before arrival",
		GuestID:       reservation.GuestID,
		RoomID:        reservation.RoomID,
		ReservationID: reservation.ID,
	})
}

func (e *SimulationEngine) resolveCheckOuts(ctx context.Context, day int, date time.Time) {
	due, err := e.reservationRepo.ScheduledCheckOuts(ctx, e.hotelID, date)
	if err != nil {
		e.recordError(day, date, "listing scheduled check-outs", err)
		return
	}

	for _, reservation := range due {
		checkedOut, amount, err := e.lifecycle.CheckOut(ctx, reservation.ID, date)
		if err != nil {
			e.recordError(day, date, "checking out reservation", err)
			continue
		}

		e.append(domain.SimulationEvent{
			Day:           day,
			Date:          date,
			Type:          domain.EventCheckOut,
			Description:   "Guest checked out",
			Amount:        amount,
			GuestID:       checkedOut.GuestID,
			RoomID:        checkedOut.RoomID,
			ReservationID: checkedOut.ID,
		})
	}
}

func (e *SimulationEngine) resolveSpecialRequest(ctx context.Context, day int, date time.Time, decisions Decisions) {
	if !decisions.SpecialRequest {
		return
	}

	inHouse, err := e.reservationRepo.CheckedIn(ctx, e.hotelID, date)
	if err != nil {
		e.recordError(day, date, "listing checked-in guests", err)
		return
	}
	if len(inHouse) == 0 {
		return
	}

	picked := inHouse[e.rng.Intn(len(inHouse))]
	kind := SpecialRequestKinds[e.rng.Intn(len(SpecialRequestKinds))]

	fee, err := e.lifecycle.ApplySpecialRequest(ctx, picked.ID, kind, date)
	if err != nil {
		e.recordError(day, date, "applying special request", err)
		return
	}

	e.append(domain.SimulationEvent{
		Day:           day,
		Date:          date,
		Type:          domain.EventSpecialRequest,
		Description:   fmt.Sprintf("Special request: %s", kind),
		Amount:        fee,
		GuestID:       picked.GuestID,
		RoomID:        picked.RoomID,
		ReservationID: picked.ID,
	})
}

func (e *SimulationEngine) resolveCheckIns(ctx context.Context, day int, date time.Time) {
	due, err := e.reservationRepo.ScheduledCheckIns(ctx, e.hotelID, date)
	if err != nil {
		e.recordError(day, date, "listing scheduled check-ins", err)
		return
	}

	for _, reservation := range due {
		checkedIn, err := e.lifecycle.CheckIn(ctx, reservation.ID, date)
		if err != nil {
			e.recordError(day, date, "checking in reservation", err)
			continue
		}

		e.append(domain.SimulationEvent{
			Day:           day,
			Date:          date,
			Type:          domain.EventCheckIn,
			Description:   "Guest checked in",
			GuestID:       checkedIn.GuestID,
			RoomID:        checkedIn.RoomID,
			ReservationID: checkedIn.ID,
		})
	}
}

// resolveBooking handles every single-room booking category. The random
// draws (lead, nights, room pick) happen in a fixed sequence regardless of
// outcome so a seed replays identically. Walk-ins book today's date and
// check in immediately; loyalty bookings reuse an existing guest and get
// the configured discount.
func (e *SimulationEngine) resolveBooking(ctx context.Context, day int, date time.Time, eventType domain.EventType, leadMin, leadMax, stayMin, stayMax int) {
	lead := e.randRange(leadMin, leadMax)
	nights := e.randRange(stayMin, stayMax)

	checkIn := date.AddDate(0, 0, lead)
	stay := domain.DateRange{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, nights)}

	rooms, err := e.availability.FindAvailable(ctx, e.hotelID, stay, ports.RoomFilter{})
	if err != nil {
		e.recordError(day, date, "querying availability", err)
		return
	}
	if len(rooms) == 0 {
		return
	}

	room := rooms[e.rng.Intn(len(rooms))]

	var guest *domain.Guest
	discount := 0.0

	if eventType == domain.EventLoyaltyBooking {
		guestID, ok, err := e.guests.PickReturningGuest(ctx, e.rng)
		if err != nil {
			e.recordError(day, date, "picking returning guest", err)
			return
		}
		if !ok {
			return
		}
		guest = &domain.Guest{ID: guestID, FirstName: "Returning", LastName: "Guest"}
		discount = e.cfg.LoyaltyDiscount
	} else {
		guest, err = e.guests.CreateSyntheticGuest(ctx, e.rng)
		if err != nil {
			e.recordError(day, date, "creating guest", err)
			return
		}
	}

	reservation, err := e.lifecycle.Create(ctx, guest.ID, room, stay, date, discount)
	if err != nil {
		if errors.Is(err, domain.ErrRoomUnavailable) {
			return
		}
		e.recordError(day, date, "creating reservation", err)
		return
	}

	e.append(domain.SimulationEvent{
		Day:           day,
		Date:          date,
		Type:          eventType,
		Description:   fmt.Sprintf("%s: %s -> Room %s (%d nights)", bookingLabel(eventType), guest.FullName(), room.RoomNumber, nights),
		Amount:        reservation.TotalPrice,
		Nights:        nights,
		Rooms:         1,
		GuestID:       guest.ID,
		RoomID:        room.ID,
		ReservationID: reservation.ID,
	})

	if eventType == domain.EventWalkIn {
		checkedIn, err := e.lifecycle.CheckIn(ctx, reservation.ID, date)
		if err != nil {
			e.recordError(day, date, "checking in walk-in", err)
			return
		}

		e.append(domain.SimulationEvent{
			Day:           day,
			Date:          date,
			Type:          domain.EventCheckIn,
			Description:   "Guest checked in",
			GuestID:       checkedIn.GuestID,
			RoomID:        checkedIn.RoomID,
			ReservationID: checkedIn.ID,
		})
	}
}

// resolveGroupBooking reserves several rooms for one stay window under a
// single group leader. When fewer rooms are free than desired the booking
// is downsized, never failed; zero free rooms skips the event.
func (e *SimulationEngine) resolveGroupBooking(ctx context.Context, day int, date time.Time) {
	lead := e.randRange(groupLeadMin, groupLeadMax)
	nights := e.randRange(groupStayMin, groupStayMax)
	desired := e.randRange(groupSizeMin, groupSizeMax)

	checkIn := date.AddDate(0, 0, lead)
	stay := domain.DateRange{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, nights)}

	rooms, err := e.availability.FindAvailable(ctx, e.hotelID, stay, ports.RoomFilter{MinRooms: desired})
	if err != nil {
		e.recordError(day, date, "querying group availability", err)
		return
	}
	if len(rooms) == 0 {
		return
	}

	size := desired
	if len(rooms) < size {
		size = len(rooms)
	}

	order := e.rng.Perm(len(rooms))

	leader, err := e.guests.CreateSyntheticGuest(ctx, e.rng)
	if err != nil {
		e.recordError(day, date, "creating group leader", err)
		return
	}

	var total float64
	booked := 0

	for _, idx := range order[:size] {
		room := rooms[idx]

		reservation, err := e.lifecycle.Create(ctx, leader.ID, room, stay, date, 0)
		if err != nil {
			if errors.Is(err, domain.ErrRoomUnavailable) {
				continue
			}
			e.recordError(day, date, "creating group reservation", err)
			continue
		}

		total += reservation.TotalPrice
		booked++
	}

	if booked == 0 {
		return
	}

	e.append(domain.SimulationEvent{
		Day:         day,
		Date:        date,
		Type:        domain.EventGroupBooking,
		Description: fmt.Sprintf("Group booking: %s -> %d rooms (%d nights)", leader.FullName(), booked, nights),
		Amount:      total,
		Nights:      nights,
		Rooms:       booked,
		GuestID:     leader.ID,
	})
}

func (e *SimulationEngine) recordError(day int, date time.Time, action string, err error) {
	log.Printf("Day %d: %s failed: %v", day, action, err)

	e.append(domain.SimulationEvent{
		Day:         day,
		Date:        date,
		Type:        domain.EventError,
		Description: fmt.Sprintf("%s failed: %v", action, err),
	})
}

func (e *SimulationEngine) append(event domain.SimulationEvent) {
	e.events = append(e.events, event)
}

// randRange draws uniformly from [min, max]. A degenerate range returns
// min without consuming the random stream unevenly.
func (e *SimulationEngine) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + e.rng.Intn(max-min+1)
}

func bookingLabel(t domain.EventType) string {
	switch t {
	case domain.EventNewReservation:
		return "New reservation"
	case domain.EventWalkIn:
		return "Walk-in booking"
	case domain.EventExtendedStay:
		return "Extended stay"
	case domain.EventLoyaltyBooking:
		return "Loyalty booking"
	default:
		return "Booking"
	}
}
