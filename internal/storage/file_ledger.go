package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vysogota0399/bank_ledger/internal/config"
	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/models"
	"go.uber.org/zap"
)

// FileLedger persists transactions as one JSON object per line in a
// single append-only file. Appends are serialized by a mutex: the file
// is the only shared state, and interleaved writes from concurrent
// handlers must not tear a line.
type FileLedger struct {
	path string
	mu   sync.Mutex
	lg   *logging.ZapLogger
}

func NewFileLedger(cfg *config.Config, lg *logging.ZapLogger) *FileLedger {
	return &FileLedger{path: cfg.LedgerFile, lg: lg}
}

func (l *FileLedger) Append(_ context.Context, tx *models.Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("storage/file_ledger: marshal transaction error %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("storage/file_ledger: create data dir error %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage/file_ledger: open ledger error %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("storage/file_ledger: append transaction error %w", err)
	}

	return nil
}

// ReadAll scans the whole ledger in append order. A missing file is an
// empty dataset. Blank lines are skipped; lines that fail to parse
// (e.g. a torn write from a crashed process) are logged and skipped so
// one bad line cannot take every analytics query down.
func (l *FileLedger) ReadAll(ctx context.Context) ([]models.Transaction, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Transaction{}, nil
		}

		return nil, fmt.Errorf("storage/file_ledger: open ledger error %w", err)
	}
	defer f.Close()

	transactions := []models.Transaction{}
	scanner := bufio.NewScanner(f)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		tx := models.Transaction{}
		if err := json.Unmarshal(raw, &tx); err != nil {
			l.lg.ErrorCtx(ctx, "storage/file_ledger: skip malformed ledger line", zap.Int("line", line), zap.Error(err))
			continue
		}

		transactions = append(transactions, tx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("storage/file_ledger: scan ledger error %w", err)
	}

	return transactions, nil
}
