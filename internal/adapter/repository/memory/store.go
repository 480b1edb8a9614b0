// Package memory provides a driverless implementation of every
// persistence port. It backs engine-level tests and demo runs that have
// no database at hand. Listings come back in a stable order so seeded
// simulation runs stay reproducible.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/core/domain"
	"github.com/hotelops/simulator/internal/core/ports"
)

type Store struct {
	mu           sync.Mutex
	hotels       map[uuid.UUID]domain.Hotel
	rooms        []*domain.Room
	roomIndex    map[uuid.UUID]*domain.Room
	reservations []*domain.Reservation
	resIndex     map[uuid.UUID]*domain.Reservation
	transactions []domain.Transaction
	guests       []domain.Guest

	// WriteErr, when set, makes every mutating operation fail with it.
	// Tests use this to exercise event-skip behavior.
	WriteErr error
}

func NewStore() *Store {
	return &Store{
		hotels:    make(map[uuid.UUID]domain.Hotel),
		roomIndex: make(map[uuid.UUID]*domain.Room),
		resIndex:  make(map[uuid.UUID]*domain.Reservation),
	}
}

// AddHotel seeds a hotel row. Rooms are added separately via AddRoom.
func (s *Store) AddHotel(hotel domain.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels[hotel.ID] = hotel
}

// AddRoom seeds a room and bumps its hotel's room count.
func (s *Store) AddRoom(room domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := room
	s.rooms = append(s.rooms, &stored)
	s.roomIndex[room.ID] = &stored

	if hotel, ok := s.hotels[room.HotelID]; ok {
		hotel.TotalRooms++
		s.hotels[room.HotelID] = hotel
	}
}

// Room returns a snapshot of the room for assertions.
func (s *Store) Room(roomID uuid.UUID) (domain.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.roomIndex[roomID]
	if !ok {
		return domain.Room{}, false
	}
	return *room, true
}

// Reservations returns a snapshot of every reservation row.
func (s *Store) Reservations() []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Reservation, 0, len(s.reservations))
	for _, res := range s.reservations {
		out = append(out, *res)
	}
	return out
}

// AllTransactions returns a snapshot of every transaction row.
func (s *Store) AllTransactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) GetHotel(_ context.Context, hotelID uuid.UUID) (*domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hotel, ok := s.hotels[hotelID]
	if !ok {
		return nil, domain.ErrHotelNotFound
	}

	for _, room := range s.rooms {
		if room.HotelID == hotelID {
			hotel.Rooms = append(hotel.Rooms, *room)
		}
	}

	sort.Slice(hotel.Rooms, func(i, j int) bool {
		return hotel.Rooms[i].RoomNumber < hotel.Rooms[j].RoomNumber
	})

	return &hotel, nil
}

func (s *Store) FindAvailable(_ context.Context, hotelID uuid.UUID, stay domain.DateRange, filter ports.RoomFilter) ([]domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var available []domain.Room
	for _, room := range s.rooms {
		if room.HotelID != hotelID || !room.IsBookable() {
			continue
		}
		if filter.RoomType != "" && room.RoomType != filter.RoomType {
			continue
		}
		if filter.Floor > 0 && room.Floor != filter.Floor {
			continue
		}
		if s.hasOverlap(room.ID, stay) {
			continue
		}

		available = append(available, *room)
	}

	sort.Slice(available, func(i, j int) bool {
		return available[i].RoomNumber < available[j].RoomNumber
	})

	return available, nil
}

func (s *Store) hasOverlap(roomID uuid.UUID, stay domain.DateRange) bool {
	for _, res := range s.reservations {
		if res.RoomID == roomID && res.IsActive() && res.Stay().Overlaps(stay) {
			return true
		}
	}
	return false
}

func (s *Store) UpdateStatus(_ context.Context, roomID uuid.UUID, status domain.RoomStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return s.WriteErr
	}

	if room, ok := s.roomIndex[roomID]; ok {
		room.Status = status
	}
	return nil
}

func (s *Store) Insert(_ context.Context, reservation *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return s.WriteErr
	}

	stored := *reservation
	s.reservations = append(s.reservations, &stored)
	s.resIndex[reservation.ID] = &stored
	return nil
}

func (s *Store) GetByID(_ context.Context, reservationID uuid.UUID) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.resIndex[reservationID]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}

	snapshot := *res
	return &snapshot, nil
}

func (s *Store) UpdateReservationStatus(_ context.Context, reservationID uuid.UUID, status domain.ReservationStatus, payment domain.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return s.WriteErr
	}

	res, ok := s.resIndex[reservationID]
	if !ok {
		return domain.ErrReservationNotFound
	}

	res.Status = status
	res.PaymentStatus = payment
	return nil
}

func (s *Store) ScheduledCheckIns(_ context.Context, hotelID uuid.UUID, date time.Time) ([]domain.Reservation, error) {
	return s.listReservations(hotelID, func(res *domain.Reservation) bool {
		return res.Status == domain.ReservationConfirmed && res.CheckIn.Equal(date)
	})
}

func (s *Store) ScheduledCheckOuts(_ context.Context, hotelID uuid.UUID, date time.Time) ([]domain.Reservation, error) {
	return s.listReservations(hotelID, func(res *domain.Reservation) bool {
		return res.Status == domain.ReservationCheckedIn && res.CheckOut.Equal(date)
	})
}

func (s *Store) Cancellable(_ context.Context, hotelID uuid.UUID, after time.Time) ([]domain.Reservation, error) {
	return s.listReservations(hotelID, func(res *domain.Reservation) bool {
		return res.Status == domain.ReservationConfirmed && res.CheckIn.After(after)
	})
}

func (s *Store) CheckedIn(_ context.Context, hotelID uuid.UUID, onOrAfter time.Time) ([]domain.Reservation, error) {
	return s.listReservations(hotelID, func(res *domain.Reservation) bool {
		return res.Status == domain.ReservationCheckedIn && !res.CheckOut.Before(onOrAfter)
	})
}

func (s *Store) listReservations(hotelID uuid.UUID, match func(*domain.Reservation) bool) ([]domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Reservation
	for _, res := range s.reservations {
		room, ok := s.roomIndex[res.RoomID]
		if !ok || room.HotelID != hotelID {
			continue
		}
		if match(res) {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (s *Store) InsertTransaction(_ context.Context, transaction *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return s.WriteErr
	}

	s.transactions = append(s.transactions, *transaction)
	return nil
}

func (s *Store) Create(_ context.Context, guest *domain.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return s.WriteErr
	}

	s.guests = append(s.guests, *guest)
	return nil
}

func (s *Store) ExistingIDs(_ context.Context) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(s.guests))
	for _, guest := range s.guests {
		ids = append(ids, guest.ID)
	}
	return ids, nil
}
