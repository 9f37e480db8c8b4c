package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/models"
)

// PgLedger is the indexed-store drop-in for FileLedger: same append-only
// semantics, rows ordered by insertion. Aggregation code never sees the
// difference.
type PgLedger struct {
	strg LedgerStorage
	lg   *logging.ZapLogger
}

type LedgerStorage interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

func NewPgLedger(strg *Storage, lg *logging.ZapLogger) *PgLedger {
	return &PgLedger{strg: strg.DB, lg: lg}
}

func (l *PgLedger) Append(ctx context.Context, tx *models.Transaction) error {
	_, err := l.strg.Exec(
		ctx,
		`
			INSERT INTO transactions(id, account, amount, operation, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`,
		tx.ID, tx.Account, tx.Amount, tx.Type, tx.Timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage/pg_ledger: append transaction error %w", err)
	}

	return nil
}

func (l *PgLedger) ReadAll(ctx context.Context) ([]models.Transaction, error) {
	rows, err := l.strg.Query(
		ctx,
		`
			SELECT id, account, amount, operation, created_at
			FROM transactions
			ORDER BY pos ASC
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage/pg_ledger: fetch transactions error %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		tx := models.Transaction{}
		var createdAt time.Time
		if err := rows.Scan(&tx.ID, &tx.Account, &tx.Amount, &tx.Type, &createdAt); err != nil {
			return nil, fmt.Errorf("storage/pg_ledger: scan transaction error %w", err)
		}

		tx.Timestamp = models.UTCTime{Time: createdAt.UTC()}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage/pg_ledger: iterate transactions error %w", err)
	}

	return transactions, nil
}
