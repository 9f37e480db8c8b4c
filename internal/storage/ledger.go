package storage

import (
	"context"

	"github.com/vysogota0399/bank_ledger/internal/config"
	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/models"
	"go.uber.org/fx"
)

// Ledger is the append-only transaction log. Aggregations are computed
// from ReadAll, so the flat file backend can be swapped for an indexed
// store without touching any query code.
type Ledger interface {
	Append(ctx context.Context, tx *models.Transaction) error
	ReadAll(ctx context.Context) ([]models.Transaction, error)
}

func NewLedger(lc fx.Lifecycle, cfg *config.Config, lg *logging.ZapLogger) (Ledger, error) {
	if cfg.StorageBackend == "postgres" {
		strg, err := NewStorage(lc, cfg)
		if err != nil {
			return nil, err
		}

		return NewPgLedger(strg, lg), nil
	}

	return NewFileLedger(cfg, lg), nil
}
