package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hotelops/simulator/internal/core/domain"
	"github.com/hotelops/simulator/internal/core/ports"
)

// Runner launches simulation runs on demand. Engines are single-use, so
// the runner assembles a fresh engine (with its own seeded random source)
// for every run over the shared repositories and cache client.
type Runner struct {
	hotelRepo       ports.HotelRepository
	roomRepo        ports.RoomRepository
	reservationRepo ports.ReservationRepository
	transactionRepo ports.TransactionRepository
	guestRepo       ports.GuestRepository
	cache           *redis.Client
	cfg             SimulationConfig
}

func NewRunner(
	hotelRepo ports.HotelRepository,
	roomRepo ports.RoomRepository,
	reservationRepo ports.ReservationRepository,
	transactionRepo ports.TransactionRepository,
	guestRepo ports.GuestRepository,
	cache *redis.Client,
	cfg SimulationConfig,
) *Runner {
	return &Runner{
		hotelRepo:       hotelRepo,
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
		guestRepo:       guestRepo,
		cache:           cache,
		cfg:             cfg,
	}
}

// Run simulates the given hotel for the given number of days starting the
// day after startDate.
func (r *Runner) Run(ctx context.Context, hotelID uuid.UUID, days int, seed int64, startDate time.Time) (*domain.SimulationResult, error) {
	rng := rand.New(rand.NewSource(seed))
	newID := NewIDGenerator(rng)

	availability := NewAvailabilityService(r.roomRepo, r.cache)
	lifecycle := NewReservationLifecycle(hotelID, r.roomRepo, r.reservationRepo, r.transactionRepo, availability, newID)
	guests := NewGuestFactory(r.guestRepo, newID)

	engine := NewSimulationEngine(
		hotelID,
		r.hotelRepo,
		r.reservationRepo,
		availability,
		lifecycle,
		guests,
		r.cfg,
		startDate,
		rng,
	)

	return engine.Run(ctx, days)
}
