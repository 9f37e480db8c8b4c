package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vysogota0399/bank_ledger/internal/config"
	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/repositories"
	"github.com/vysogota0399/bank_ledger/internal/servers/api/handlers"
	"github.com/vysogota0399/bank_ledger/internal/storage"
	"go.uber.org/zap/zapcore"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		LedgerFile: filepath.Join(dir, "data", "transactions.jsonl"),
		StaticDir:  filepath.Join(dir, "static"),
		LogLevel:   int(zapcore.ErrorLevel),
	}

	lg, err := logging.NewZapLogger(cfg)
	require.NoError(t, err)

	ledger := storage.NewFileLedger(cfg, lg)
	transactions := repositories.NewTransactionsRepository(ledger, lg)
	analytics := repositories.NewAnalyticsRepository(ledger, lg)

	router := NewRouter(
		cfg,
		handlers.NewRootHandler(cfg),
		handlers.NewHealthHandler(),
		handlers.NewCreateTransactionHandler(transactions, lg),
		handlers.NewSummaryHandler(analytics, lg),
		handlers.NewByAccountHandler(analytics, lg),
		handlers.NewTimelineHandler(analytics, lg),
		handlers.NewRecentHandler(analytics, lg),
		handlers.NewTypeDistributionHandler(analytics, lg),
	)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, body any, wantCode int, out any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantCode, resp.StatusCode)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}

func payload(id, account string, amount float64, txType, timestamp string) map[string]any {
	return map[string]any{
		"id":        id,
		"account":   account,
		"amount":    amount,
		"timestamp": timestamp,
		"type":      txType,
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	var out map[string]string
	doJSON(t, ts, http.MethodGet, "/health", nil, http.StatusOK, &out)
	assert.Equal(t, "ok", out["status"])
}

func TestCreateTransaction(t *testing.T) {
	ts := newTestServer(t)

	var out map[string]string
	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-1", "A123", 100.00, "credit", "2025-08-25T14:00:00Z"),
		http.StatusCreated, &out)

	assert.Equal(t, "accepted", out["status"])
	assert.Equal(t, "tx-1", out["id"])
}

func TestCreateTransactionRejectsInvalid(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"unknown type", payload("tx-1", "A123", 100.00, "invalid", "2025-08-25T14:00:00Z")},
		{"negative amount", payload("tx-1", "A123", -5.00, "credit", "2025-08-25T14:00:00Z")},
		{"missing account", payload("tx-1", "", 100.00, "credit", "2025-08-25T14:00:00Z")},
		{"bad timestamp", payload("tx-1", "A123", 100.00, "credit", "not-a-time")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out map[string]string
			doJSON(t, ts, http.MethodPost, "/transactions", tt.body, http.StatusUnprocessableEntity, &out)
			assert.NotEmpty(t, out["error"])
		})
	}

	// nothing made it into the ledger
	var summary repositories.Summary
	doJSON(t, ts, http.MethodGet, "/api/analytics/summary", nil, http.StatusOK, &summary)
	assert.Equal(t, 0, summary.TotalTransactions)
}

func TestCreateTransactionRejectsBadJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Post(ts.URL+"/transactions", "application/json", bytes.NewBufferString("{bad json}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSummaryReflectsSubmissions(t *testing.T) {
	ts := newTestServer(t)

	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-1", "A123", 100.00, "credit", "2025-08-25T14:00:00Z"), http.StatusCreated, nil)

	var summary repositories.Summary
	doJSON(t, ts, http.MethodGet, "/api/analytics/summary", nil, http.StatusOK, &summary)
	assert.Equal(t, 1, summary.TotalTransactions)
	assert.Equal(t, 100.00, summary.TotalCredits)

	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-2", "A123", 40.00, "debit", "2025-08-25T14:05:00Z"), http.StatusCreated, nil)

	doJSON(t, ts, http.MethodGet, "/api/analytics/summary", nil, http.StatusOK, &summary)
	assert.Equal(t, 2, summary.TotalTransactions)
	assert.Equal(t, 100.00, summary.TotalCredits)
	assert.Equal(t, 40.00, summary.TotalDebits)
	assert.Equal(t, summary.TotalCredits-summary.TotalDebits, summary.NetBalance)
}

func TestByAccountScenario(t *testing.T) {
	ts := newTestServer(t)

	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-1", "A123", 100.00, "credit", "2025-08-25T14:00:00Z"), http.StatusCreated, nil)
	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-2", "A123", 40.00, "debit", "2025-08-25T14:05:00Z"), http.StatusCreated, nil)

	var accounts []repositories.AccountSummary
	doJSON(t, ts, http.MethodGet, "/api/analytics/by-account", nil, http.StatusOK, &accounts)
	require.Len(t, accounts, 1)

	assert.Equal(t, "A123", accounts[0].Account)
	assert.Equal(t, 100.00, accounts[0].Credits)
	assert.Equal(t, 40.00, accounts[0].Debits)
	assert.Equal(t, 60.00, accounts[0].Balance)
	assert.Equal(t, 2, accounts[0].Count)
}

func TestRecentLimit(t *testing.T) {
	ts := newTestServer(t)

	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-early", "A123", 10.00, "credit", "2025-08-25T14:00:00Z"), http.StatusCreated, nil)
	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-late", "B456", 20.00, "debit", "2025-08-25T15:00:00Z"), http.StatusCreated, nil)

	var recent []map[string]any
	doJSON(t, ts, http.MethodGet, "/api/analytics/recent?limit=1", nil, http.StatusOK, &recent)
	require.Len(t, recent, 1)
	assert.Equal(t, "tx-late", recent[0]["id"])

	doJSON(t, ts, http.MethodGet, "/api/analytics/recent", nil, http.StatusOK, &recent)
	assert.Len(t, recent, 2)

	doJSON(t, ts, http.MethodGet, "/api/analytics/recent?limit=oops", nil, http.StatusUnprocessableEntity, nil)
}

func TestEmptyLedgerResponses(t *testing.T) {
	ts := newTestServer(t)

	var summary repositories.Summary
	doJSON(t, ts, http.MethodGet, "/api/analytics/summary", nil, http.StatusOK, &summary)
	assert.Equal(t, repositories.Summary{}, summary)

	var accounts []repositories.AccountSummary
	doJSON(t, ts, http.MethodGet, "/api/analytics/by-account", nil, http.StatusOK, &accounts)
	assert.Empty(t, accounts)

	var timeline []repositories.TimelineBucket
	doJSON(t, ts, http.MethodGet, "/api/analytics/timeline", nil, http.StatusOK, &timeline)
	assert.Empty(t, timeline)

	var dist repositories.TypeDistribution
	doJSON(t, ts, http.MethodGet, "/api/analytics/type-distribution", nil, http.StatusOK, &dist)
	assert.Equal(t, repositories.TypeDistribution{}, dist)
}

func TestTimelineBuckets(t *testing.T) {
	ts := newTestServer(t)

	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-1", "A123", 10.00, "credit", "2025-08-25T14:10:00Z"), http.StatusCreated, nil)
	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-2", "A123", 20.00, "debit", "2025-08-25T14:50:00Z"), http.StatusCreated, nil)
	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-3", "B456", 30.00, "credit", "2025-08-25T16:00:00Z"), http.StatusCreated, nil)

	var timeline []repositories.TimelineBucket
	doJSON(t, ts, http.MethodGet, "/api/analytics/timeline", nil, http.StatusOK, &timeline)
	require.Len(t, timeline, 2)
	assert.Equal(t, "2025-08-25 14:00", timeline[0].Timestamp)
	assert.Equal(t, "2025-08-25 16:00", timeline[1].Timestamp)
	assert.Equal(t, 2, timeline[0].Count)
}

func TestTimestampNormalizedOnIngestion(t *testing.T) {
	ts := newTestServer(t)

	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-1", "A123", 10.00, "credit", "2025-08-25T16:10:00+02:00"), http.StatusCreated, nil)

	var recent []map[string]any
	doJSON(t, ts, http.MethodGet, "/api/analytics/recent", nil, http.StatusOK, &recent)
	require.Len(t, recent, 1)
	assert.Equal(t, "2025-08-25T14:10:00Z", recent[0]["timestamp"])
}

func TestRootPlaceholderWithoutStaticDir(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestRecentIsIdempotent(t *testing.T) {
	ts := newTestServer(t)

	doJSON(t, ts, http.MethodPost, "/transactions",
		payload("tx-1", "A123", 10.00, "credit", "2025-08-25T14:10:00Z"), http.StatusCreated, nil)

	var first, second []map[string]any
	doJSON(t, ts, http.MethodGet, "/api/analytics/recent", nil, http.StatusOK, &first)
	doJSON(t, ts, http.MethodGet, "/api/analytics/recent", nil, http.StatusOK, &second)
	assert.Equal(t, first, second)
}
