package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/hotelops/simulator/internal/core/domain"
	"github.com/hotelops/simulator/internal/core/ports"
)

// GuestFactory produces synthetic guest identities for the simulation.
// New guests get a uniformly drawn name from the configured pools;
// returning guests are drawn from the identifiers already in the store.
type GuestFactory struct {
	guestRepo ports.GuestRepository
	newID     func() uuid.UUID
	counter   int
}

func NewGuestFactory(guestRepo ports.GuestRepository, newID func() uuid.UUID) *GuestFactory {
	return &GuestFactory{guestRepo: guestRepo, newID: newID}
}

// CreateSyntheticGuest persists a freshly generated guest and returns it.
// A store failure is returned wrapped; callers treat it as an event skip,
// not as fatal.
func (f *GuestFactory) CreateSyntheticGuest(ctx context.Context, rng *rand.Rand) (*domain.Guest, error) {
	f.counter++

	guest := &domain.Guest{
		ID:        f.newID(),
		FirstName: guestFirstNames[rng.Intn(len(guestFirstNames))],
		LastName:  guestLastNames[rng.Intn(len(guestLastNames))],
		Email:     fmt.Sprintf("guest%d@example.com", f.counter),
	}

	if err := f.guestRepo.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to persist synthetic guest: %w", err)
	}

	return guest, nil
}

// PickReturningGuest draws a previously seen guest id for loyalty
// bookings. The second return value is false when no guests exist yet.
func (f *GuestFactory) PickReturningGuest(ctx context.Context, rng *rand.Rand) (uuid.UUID, bool, error) {
	ids, err := f.guestRepo.ExistingIDs(ctx)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to list existing guests: %w", err)
	}

	if len(ids) == 0 {
		return uuid.Nil, false, nil
	}

	return ids[rng.Intn(len(ids))], true, nil
}
