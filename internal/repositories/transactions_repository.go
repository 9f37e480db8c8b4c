package repositories

import (
	"context"
	"fmt"

	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/models"
	"github.com/vysogota0399/bank_ledger/internal/storage"
)

type TransactionsRepository struct {
	ledger storage.Ledger
	lg     *logging.ZapLogger
}

func NewTransactionsRepository(ledger storage.Ledger, lg *logging.ZapLogger) *TransactionsRepository {
	return &TransactionsRepository{ledger: ledger, lg: lg}
}

// Create appends an already validated record to the ledger. Records are
// never mutated or deleted after this point.
func (rep *TransactionsRepository) Create(ctx context.Context, in *models.Transaction) error {
	if err := rep.ledger.Append(ctx, in); err != nil {
		return fmt.Errorf("transactions_repository: append transaction error %w", err)
	}

	return nil
}

func (rep *TransactionsRepository) All(ctx context.Context) ([]models.Transaction, error) {
	transactions, err := rep.ledger.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("transactions_repository: read ledger error %w", err)
	}

	return transactions, nil
}
