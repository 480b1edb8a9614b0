package domain

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionPayment    TransactionType = "payment"
	TransactionRefund     TransactionType = "refund"
	TransactionCharge     TransactionType = "charge"
	TransactionAdjustment TransactionType = "adjustment"
)

type Transaction struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Amount        float64
	Type          TransactionType
	Date          time.Time
	Description   string
}
