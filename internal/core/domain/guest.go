package domain

import (
	"github.com/google/uuid"
)

type Guest struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	LoyaltyPoints int
}

func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
