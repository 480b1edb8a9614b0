package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/adapter/repository/memory"
	"github.com/hotelops/simulator/internal/core/domain"
	"github.com/hotelops/simulator/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC)
}

func seedStore(t *testing.T) (*memory.Store, uuid.UUID, []domain.Room) {
	t.Helper()

	store := memory.NewStore()
	hotelID := uuid.New()
	store.AddHotel(domain.Hotel{ID: hotelID, Name: "Test Hotel"})

	rooms := []domain.Room{
		{ID: uuid.New(), HotelID: hotelID, RoomNumber: "101", RoomType: "standard", Floor: 1, Status: domain.RoomAvailable},
		{ID: uuid.New(), HotelID: hotelID, RoomNumber: "102", RoomType: "deluxe", Floor: 1, Status: domain.RoomAvailable},
		{ID: uuid.New(), HotelID: hotelID, RoomNumber: "201", RoomType: "standard", Floor: 2, Status: domain.RoomMaintenance},
	}
	for _, room := range rooms {
		store.AddRoom(room)
	}

	return store, hotelID, rooms
}

func TestGetHotel_CountsRooms(t *testing.T) {
	store, hotelID, _ := seedStore(t)

	hotel, err := store.GetHotel(context.Background(), hotelID)
	require.NoError(t, err)

	assert.Equal(t, 3, hotel.TotalRooms)
	require.Len(t, hotel.Rooms, 3)
	assert.Equal(t, "101", hotel.Rooms[0].RoomNumber, "rooms come back ordered by number")

	_, err = store.GetHotel(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
}

func TestFindAvailable_ExcludesMaintenanceAndOverlaps(t *testing.T) {
	store, hotelID, rooms := seedStore(t)
	ctx := context.Background()

	stay := domain.DateRange{CheckIn: day(10), CheckOut: day(13)}

	free, err := store.FindAvailable(ctx, hotelID, stay, ports.RoomFilter{})
	require.NoError(t, err)
	require.Len(t, free, 2, "maintenance room never qualifies")

	// Book room 101 over an overlapping window.
	require.NoError(t, store.Insert(ctx, &domain.Reservation{
		ID:       uuid.New(),
		RoomID:   rooms[0].ID,
		CheckIn:  day(12),
		CheckOut: day(14),
		Status:   domain.ReservationConfirmed,
	}))

	free, err = store.FindAvailable(ctx, hotelID, stay, ports.RoomFilter{})
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "102", free[0].RoomNumber)

	// A back-to-back stay beginning on the existing checkout day fits.
	followOn := domain.DateRange{CheckIn: day(14), CheckOut: day(16)}
	free, err = store.FindAvailable(ctx, hotelID, followOn, ports.RoomFilter{})
	require.NoError(t, err)
	assert.Len(t, free, 2)
}

func TestFindAvailable_CancelledReservationFreesWindow(t *testing.T) {
	store, hotelID, rooms := seedStore(t)
	ctx := context.Background()

	stay := domain.DateRange{CheckIn: day(10), CheckOut: day(12)}
	res := &domain.Reservation{
		ID:       uuid.New(),
		RoomID:   rooms[0].ID,
		CheckIn:  stay.CheckIn,
		CheckOut: stay.CheckOut,
		Status:   domain.ReservationConfirmed,
	}
	require.NoError(t, store.Insert(ctx, res))

	free, err := store.FindAvailable(ctx, hotelID, stay, ports.RoomFilter{})
	require.NoError(t, err)
	require.Len(t, free, 1)

	require.NoError(t, store.UpdateReservationStatus(ctx, res.ID, domain.ReservationCancelled, domain.PaymentPending))

	free, err = store.FindAvailable(ctx, hotelID, stay, ports.RoomFilter{})
	require.NoError(t, err)
	assert.Len(t, free, 2)
}

func TestFindAvailable_Filters(t *testing.T) {
	store, hotelID, _ := seedStore(t)
	ctx := context.Background()

	stay := domain.DateRange{CheckIn: day(10), CheckOut: day(11)}

	free, err := store.FindAvailable(ctx, hotelID, stay, ports.RoomFilter{RoomType: "deluxe"})
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "102", free[0].RoomNumber)

	free, err = store.FindAvailable(ctx, hotelID, stay, ports.RoomFilter{Floor: 2})
	require.NoError(t, err)
	assert.Empty(t, free, "the only second-floor room is under maintenance")
}

func TestReservationListings(t *testing.T) {
	store, hotelID, rooms := seedStore(t)
	ctx := context.Background()

	arriving := &domain.Reservation{
		ID: uuid.New(), RoomID: rooms[0].ID,
		CheckIn: day(10), CheckOut: day(12),
		Status: domain.ReservationConfirmed,
	}
	inHouse := &domain.Reservation{
		ID: uuid.New(), RoomID: rooms[1].ID,
		CheckIn: day(8), CheckOut: day(10),
		Status: domain.ReservationCheckedIn,
	}
	future := &domain.Reservation{
		ID: uuid.New(), RoomID: rooms[2].ID,
		CheckIn: day(15), CheckOut: day(18),
		Status: domain.ReservationConfirmed,
	}
	for _, res := range []*domain.Reservation{arriving, inHouse, future} {
		require.NoError(t, store.Insert(ctx, res))
	}

	checkIns, err := store.ScheduledCheckIns(ctx, hotelID, day(10))
	require.NoError(t, err)
	require.Len(t, checkIns, 1)
	assert.Equal(t, arriving.ID, checkIns[0].ID)

	checkOuts, err := store.ScheduledCheckOuts(ctx, hotelID, day(10))
	require.NoError(t, err)
	require.Len(t, checkOuts, 1)
	assert.Equal(t, inHouse.ID, checkOuts[0].ID)

	cancellable, err := store.Cancellable(ctx, hotelID, day(10))
	require.NoError(t, err)
	require.Len(t, cancellable, 1)
	assert.Equal(t, future.ID, cancellable[0].ID, "only not-yet-arrived stays can cancel")

	occupied, err := store.CheckedIn(ctx, hotelID, day(9))
	require.NoError(t, err)
	require.Len(t, occupied, 1)
	assert.Equal(t, inHouse.ID, occupied[0].ID)
}

func TestWriteErrInjection(t *testing.T) {
	store, _, rooms := seedStore(t)
	ctx := context.Background()

	store.WriteErr = assert.AnError

	assert.ErrorIs(t, store.Insert(ctx, &domain.Reservation{ID: uuid.New()}), assert.AnError)
	assert.ErrorIs(t, store.UpdateStatus(ctx, rooms[0].ID, domain.RoomOccupied), assert.AnError)
	assert.ErrorIs(t, store.Create(ctx, &domain.Guest{ID: uuid.New()}), assert.AnError)
}
