package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/adapter/repository/memory"
	"github.com/hotelops/simulator/internal/core/domain"
	"github.com/hotelops/simulator/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var simStart = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

func seedHotel(store *memory.Store, rooms int) uuid.UUID {
	hotelID := uuid.New()
	store.AddHotel(domain.Hotel{ID: hotelID, Name: "Grand Plaza", Stars: 4})

	for i := 0; i < rooms; i++ {
		store.AddRoom(domain.Room{
			ID:            uuid.New(),
			HotelID:       hotelID,
			Floor:         i/10 + 1,
			RoomNumber:    fmt.Sprintf("%d", 101+i),
			RoomType:      "standard",
			PricePerNight: 100,
			MaxOccupancy:  2,
			Status:        domain.RoomAvailable,
		})
	}

	return hotelID
}

func newRunner(store *memory.Store, cfg services.SimulationConfig) *services.Runner {
	return services.NewRunner(
		store.HotelRepo(),
		store.RoomRepo(),
		store.ReservationRepo(),
		store.TransactionRepo(),
		store.GuestRepo(),
		nil,
		cfg,
	)
}

// onlyProbability builds a config where a single event category is certain
// and everything else never fires.
func onlyProbability(set func(*services.SimulationConfig)) services.SimulationConfig {
	var cfg services.SimulationConfig
	set(&cfg)
	return cfg
}

func TestRun_HotelNotFound(t *testing.T) {
	store := memory.NewStore()
	runner := newRunner(store, services.DefaultConfig())

	result, err := runner.Run(context.Background(), uuid.New(), 5, 1, simStart)

	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
	assert.Nil(t, result)
}

func TestRun_WalkInChecksInSameDay(t *testing.T) {
	store := memory.NewStore()
	hotelID := seedHotel(store, 3)

	cfg := onlyProbability(func(c *services.SimulationConfig) { c.WalkInProbability = 1 })
	runner := newRunner(store, cfg)

	result, err := runner.Run(context.Background(), hotelID, 1, 4, simStart)
	require.NoError(t, err)

	assert.Equal(t, 1, result.EventCounts[domain.EventWalkIn])
	assert.Equal(t, 1, result.EventCounts[domain.EventCheckIn])
	assert.Zero(t, result.EventCounts[domain.EventError])

	reservations := store.Reservations()
	require.Len(t, reservations, 1)
	res := reservations[0]
	assert.Equal(t, domain.ReservationCheckedIn, res.Status)
	assert.Equal(t, simStart.AddDate(0, 0, 1), res.CheckIn, "walk-ins arrive the day they book")

	room, ok := store.Room(res.RoomID)
	require.True(t, ok)
	assert.Equal(t, domain.RoomOccupied, room.Status)
}

func TestRun_StandardBookingFullLifecycle(t *testing.T) {
	store := memory.NewStore()
	hotelID := seedHotel(store, 10)

	cfg := onlyProbability(func(c *services.SimulationConfig) { c.NewReservationProbability = 1 })
	runner := newRunner(store, cfg)

	result, err := runner.Run(context.Background(), hotelID, 20, 99, simStart)
	require.NoError(t, err)

	assert.Positive(t, result.EventCounts[domain.EventNewReservation])
	assert.Positive(t, result.EventCounts[domain.EventCheckIn], "advance bookings must reach their check-in day")
	assert.Positive(t, result.EventCounts[domain.EventCheckOut])
	assert.Zero(t, result.EventCounts[domain.EventError])

	// Every completed stay settles exactly one payment transaction.
	payments := 0
	for _, tx := range store.AllTransactions() {
		if tx.Type == domain.TransactionPayment {
			payments++
		}
	}
	assert.Equal(t, result.EventCounts[domain.EventCheckOut], payments)

	// Collected revenue equals the sum of payment transactions: nothing
	// was charged or refunded in this run.
	var collected float64
	for _, tx := range store.AllTransactions() {
		collected += tx.Amount
	}
	assert.InDelta(t, collected, result.TotalRevenue, 0.01)
}

func TestRun_SameSeedSameEventLog(t *testing.T) {
	run := func() *domain.SimulationResult {
		store := memory.NewStore()
		hotelID := seedHotel(store, 5)

		runner := newRunner(store, services.DefaultConfig())
		result, err := runner.Run(context.Background(), hotelID, 30, 12345, simStart)
		require.NoError(t, err)
		return result
	}

	first := run()
	second := run()

	// Room ids are store-seeded and differ between the two stores, so the
	// comparison covers everything except RoomID.
	require.Len(t, second.Events, len(first.Events))
	for i := range first.Events {
		a, b := first.Events[i], second.Events[i]
		assert.Equal(t, a.Day, b.Day)
		assert.Equal(t, a.Type, b.Type)
		assert.Equal(t, a.Amount, b.Amount)
		assert.Equal(t, a.Nights, b.Nights)
		assert.Equal(t, a.Rooms, b.Rooms)
		assert.Equal(t, a.GuestID, b.GuestID, "entity ids derive from the seed")
		assert.Equal(t, a.ReservationID, b.ReservationID)
	}

	assert.Equal(t, first.TotalRevenue, second.TotalRevenue)
	assert.Equal(t, first.EventCounts, second.EventCounts)
}

func TestRun_DifferentSeedsDiverge(t *testing.T) {
	run := func(seed int64) *domain.SimulationResult {
		store := memory.NewStore()
		hotelID := seedHotel(store, 5)
		runner := newRunner(store, services.DefaultConfig())
		result, err := runner.Run(context.Background(), hotelID, 30, seed, simStart)
		require.NoError(t, err)
		return result
	}

	first := run(1)
	second := run(2)

	assert.NotEqual(t, first.EventCounts, second.EventCounts)
}

func TestRun_NoDoubleBooking(t *testing.T) {
	store := memory.NewStore()
	hotelID := seedHotel(store, 2)

	cfg := services.SimulationConfig{
		NewReservationProbability: 1,
		WalkInProbability:         1,
		GroupBookingProbability:   1,
		ExtendedStayProbability:   1,
		LoyaltyBookingProbability: 1,
		SpecialRequestProbability: 1,
		CancellationProbability:   1,
	}
	runner := newRunner(store, cfg)

	_, err := runner.Run(context.Background(), hotelID, 40, 7, simStart)
	require.NoError(t, err)

	// Two reservations may share a room and overlapping dates only if one
	// of them was cancelled and so gave the window back.
	reservations := store.Reservations()
	for i := 0; i < len(reservations); i++ {
		for j := i + 1; j < len(reservations); j++ {
			a, b := reservations[i], reservations[j]
			if a.RoomID != b.RoomID || !a.Stay().Overlaps(b.Stay()) {
				continue
			}
			assert.True(t,
				a.Status == domain.ReservationCancelled || b.Status == domain.ReservationCancelled,
				"room %s double-booked: %s and %s", a.RoomID, a.ID, b.ID,
			)
		}
	}
}

func TestRun_GroupBookingDownsizes(t *testing.T) {
	store := memory.NewStore()
	hotelID := seedHotel(store, 2)

	cfg := onlyProbability(func(c *services.SimulationConfig) { c.GroupBookingProbability = 1 })
	runner := newRunner(store, cfg)

	result, err := runner.Run(context.Background(), hotelID, 1, 21, simStart)
	require.NoError(t, err)

	require.Equal(t, 1, result.EventCounts[domain.EventGroupBooking])

	for _, event := range result.Events {
		if event.Type == domain.EventGroupBooking {
			// Groups want 3 to 6 rooms; the hotel only has 2.
			assert.LessOrEqual(t, event.Rooms, 2)
			assert.Positive(t, event.Rooms)
		}
	}

	reservations := store.Reservations()
	require.NotEmpty(t, reservations)
	leader := reservations[0].GuestID
	for _, res := range reservations {
		assert.Equal(t, leader, res.GuestID, "one leader holds every room of the group")
	}
}

func TestRun_LoyaltyNeedsExistingGuest(t *testing.T) {
	store := memory.NewStore()
	hotelID := seedHotel(store, 5)

	cfg := onlyProbability(func(c *services.SimulationConfig) { c.LoyaltyBookingProbability = 1 })
	runner := newRunner(store, cfg)

	// No guests exist and loyalty is the only category, so no booking can
	// ever be placed and no error may be recorded either.
	result, err := runner.Run(context.Background(), hotelID, 10, 3, simStart)
	require.NoError(t, err)

	assert.Zero(t, result.EventCounts[domain.EventLoyaltyBooking])
	assert.Zero(t, result.EventCounts[domain.EventError])
	assert.Empty(t, store.Reservations())
}

func TestRun_WriteFailuresBecomeErrorEvents(t *testing.T) {
	store := memory.NewStore()
	hotelID := seedHotel(store, 5)
	store.WriteErr = errors.New("disk full")

	cfg := onlyProbability(func(c *services.SimulationConfig) { c.NewReservationProbability = 1 })
	runner := newRunner(store, cfg)

	result, err := runner.Run(context.Background(), hotelID, 5, 8, simStart)

	require.NoError(t, err, "event-level failures must not abort the run")
	assert.Positive(t, result.EventCounts[domain.EventError])
	assert.Empty(t, store.Reservations())
}

func TestRun_ZeroProbabilitiesProduceNoEvents(t *testing.T) {
	store := memory.NewStore()
	hotelID := seedHotel(store, 5)

	runner := newRunner(store, services.SimulationConfig{})

	result, err := runner.Run(context.Background(), hotelID, 15, 6, simStart)
	require.NoError(t, err)

	assert.Empty(t, result.Events)
	assert.Zero(t, result.TotalRevenue)
	assert.Equal(t, 15, result.TotalDays)
	assert.Equal(t, 5, result.TotalRooms)
}
