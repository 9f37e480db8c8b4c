package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/models"
	"go.uber.org/zap"
)

const requestTimeout = 5 * time.Second

const (
	minAmount = 10.0
	maxAmount = 2000.0
)

type Config struct {
	Endpoint string
	Count    int
	Rate     float64
	Accounts []string
	APIKey   string
}

// Generator is an open-loop load source: one synthetic transaction per
// iteration, fire-and-forget. Transport failures are printed and the run
// continues; non-2xx responses are not failures, their status and body
// are printed verbatim for the caller to inspect.
type Generator struct {
	cfg    *Config
	lg     *logging.ZapLogger
	client *http.Client
	rand   *rand.Rand
	out    io.Writer
}

func NewGenerator(cfg *Config, lg *logging.ZapLogger) *Generator {
	return &Generator{
		cfg:    cfg,
		lg:     lg,
		client: &http.Client{Timeout: requestTimeout},
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		out:    os.Stdout,
	}
}

func (g *Generator) Run(ctx context.Context) error {
	if len(g.cfg.Accounts) == 0 {
		return fmt.Errorf("generator: accounts list is empty")
	}

	g.lg.DebugCtx(ctx, "start generation",
		zap.String("endpoint", g.cfg.Endpoint),
		zap.Int("count", g.cfg.Count),
		zap.Float64("rate", g.cfg.Rate),
	)

	var delay time.Duration
	if g.cfg.Rate > 0 {
		delay = time.Duration(float64(time.Second) / g.cfg.Rate)
	}

	for i := 1; i <= g.cfg.Count; i++ {
		tx := g.makeTransaction()

		status, body, err := g.submit(ctx, tx)
		if err != nil {
			fmt.Fprintf(g.out, "[%d] Error: %v\n", i, err)
		} else {
			fmt.Fprintf(g.out, "[%d] %d -> %s\n", i, status, body)
		}

		if delay > 0 && i < g.cfg.Count {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return nil
}

func (g *Generator) makeTransaction() *models.Transaction {
	txType := models.TransactionCredit
	if g.rand.Intn(2) == 1 {
		txType = models.TransactionDebit
	}

	return &models.Transaction{
		ID:        "tx-" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Account:   g.cfg.Accounts[g.rand.Intn(len(g.cfg.Accounts))],
		Amount:    math.Round((minAmount+g.rand.Float64()*(maxAmount-minAmount))*100) / 100,
		Timestamp: models.UTCTime{Time: time.Now().UTC()},
		Type:      txType,
	}
}

func (g *Generator) submit(ctx context.Context, tx *models.Transaction) (int, string, error) {
	payload, err := json.Marshal(tx)
	if err != nil {
		return 0, "", fmt.Errorf("generator: marshal transaction error %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, "", fmt.Errorf("generator: build request error %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", fmt.Errorf("generator: read response error %w", err)
	}

	return resp.StatusCode, strings.TrimSpace(string(body)), nil
}
