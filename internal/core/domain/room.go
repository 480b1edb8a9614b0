package domain

import (
	"github.com/google/uuid"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomReserved    RoomStatus = "reserved"
	RoomMaintenance RoomStatus = "maintenance"
)

type Room struct {
	ID            uuid.UUID
	HotelID       uuid.UUID
	Floor         int
	RoomNumber    string
	RoomType      string
	PricePerNight float64
	MaxOccupancy  int
	Status        RoomStatus
}

func (r *Room) IsBookable() bool {
	return r.Status != RoomMaintenance
}
