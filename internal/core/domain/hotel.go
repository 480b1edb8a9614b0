package domain

import (
	"github.com/google/uuid"
)

type Hotel struct {
	ID         uuid.UUID
	Name       string
	Stars      int
	TotalRooms int
	Rooms      []Room
}
