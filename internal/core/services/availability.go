package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hotelops/simulator/internal/core/domain"
	"github.com/hotelops/simulator/internal/core/ports"
)

const (
	dateLayout             = "2006-01-02"
	availabilityCacheTTL   = 30 * time.Second
	availabilityVersionKey = "availability:ver:%s"
)

// AvailabilityService answers which rooms are free for a stay window.
// It is strictly read-only with respect to room state; lifecycle writers
// bump the per-hotel cache version instead of mutating entries in place.
type AvailabilityService struct {
	roomRepo ports.RoomRepository
	cache    *redis.Client
}

// NewAvailabilityService wires the room store and an optional Redis
// client. A nil client disables caching; every query then goes straight
// to the store.
func NewAvailabilityService(roomRepo ports.RoomRepository, cache *redis.Client) *AvailabilityService {
	return &AvailabilityService{roomRepo: roomRepo, cache: cache}
}

// FindAvailable returns the rooms free for the whole requested window,
// ordered by room number. A room qualifies only if no reservation in
// confirmed or checked_in state overlaps the window. Fewer rooms than
// filter.MinRooms is not an error: group bookings degrade to whatever is
// available. Cache failures are logged and the store is used directly.
func (s *AvailabilityService) FindAvailable(ctx context.Context, hotelID uuid.UUID, stay domain.DateRange, filter ports.RoomFilter) ([]domain.Room, error) {
	key, ok := s.cacheKey(ctx, hotelID, stay, filter)
	if ok {
		if rooms, hit := s.cachedRooms(ctx, key); hit {
			return rooms, nil
		}
	}

	rooms, err := s.roomRepo.FindAvailable(ctx, hotelID, stay, filter)
	if err != nil {
		return nil, fmt.Errorf("availability query failed: %w", err)
	}

	if ok {
		s.storeRooms(ctx, key, rooms)
	}

	return rooms, nil
}

// Invalidate bumps the hotel's cache version after a reservation or room
// status write. Existing cache entries become unreachable and expire.
func (s *AvailabilityService) Invalidate(ctx context.Context, hotelID uuid.UUID) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Incr(ctx, fmt.Sprintf(availabilityVersionKey, hotelID)).Err(); err != nil {
		log.Printf("Failed to bump availability cache version for hotel %s: %v", hotelID, err)
	}
}

func (s *AvailabilityService) cacheKey(ctx context.Context, hotelID uuid.UUID, stay domain.DateRange, filter ports.RoomFilter) (string, bool) {
	if s.cache == nil {
		return "", false
	}

	ver, err := s.cache.Get(ctx, fmt.Sprintf(availabilityVersionKey, hotelID)).Int64()
	if err != nil && err != redis.Nil {
		log.Printf("Availability cache version lookup failed: %v", err)
		return "", false
	}

	key := fmt.Sprintf("availability:%s:%d:%s:%s:%s:%d",
		hotelID,
		ver,
		stay.CheckIn.Format(dateLayout),
		stay.CheckOut.Format(dateLayout),
		filter.RoomType,
		filter.Floor,
	)

	return key, true
}

func (s *AvailabilityService) cachedRooms(ctx context.Context, key string) ([]domain.Room, bool) {
	payload, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Availability cache read failed: %v", err)
		}
		return nil, false
	}

	var rooms []domain.Room
	if err := json.Unmarshal(payload, &rooms); err != nil {
		log.Printf("Availability cache entry corrupt, ignoring: %v", err)
		return nil, false
	}

	return rooms, true
}

func (s *AvailabilityService) storeRooms(ctx context.Context, key string, rooms []domain.Room) {
	payload, err := json.Marshal(rooms)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, payload, availabilityCacheTTL).Err(); err != nil {
		log.Printf("Availability cache write failed: %v", err)
	}
}
