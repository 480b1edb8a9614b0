package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hotelops/simulator/internal/core/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Insert(ctx context.Context, transaction *domain.Transaction) error {
	query := `
	INSERT INTO transactions (id, reservation_id, amount, transaction_type, transaction_date, description)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		transaction.ID,
		transaction.ReservationID,
		transaction.Amount,
		transaction.Type,
		transaction.Date,
		transaction.Description,
	)

	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}
