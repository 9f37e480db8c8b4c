package repositories

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/models"
	"github.com/vysogota0399/bank_ledger/internal/storage"
)

// AnalyticsRepository computes derived views over the ledger. Every
// method is a pure function of the log contents at read time: no state
// survives between calls, each call re-scans the whole ledger.
type AnalyticsRepository struct {
	ledger storage.Ledger
	lg     *logging.ZapLogger
}

func NewAnalyticsRepository(ledger storage.Ledger, lg *logging.ZapLogger) *AnalyticsRepository {
	return &AnalyticsRepository{ledger: ledger, lg: lg}
}

type Summary struct {
	TotalTransactions  int     `json:"total_transactions"`
	TotalCredits       float64 `json:"total_credits"`
	TotalDebits        float64 `json:"total_debits"`
	NetBalance         float64 `json:"net_balance"`
	AverageTransaction float64 `json:"average_transaction"`
	UniqueAccounts     int     `json:"unique_accounts"`
}

type AccountSummary struct {
	Account string  `json:"account"`
	Credits float64 `json:"credits"`
	Debits  float64 `json:"debits"`
	Balance float64 `json:"balance"`
	Count   int     `json:"count"`
}

type TimelineBucket struct {
	Timestamp string  `json:"timestamp"`
	Credits   float64 `json:"credits"`
	Debits    float64 `json:"debits"`
	Count     int     `json:"count"`
}

type TypeDistribution struct {
	Credit int `json:"credit"`
	Debit  int `json:"debit"`
}

func (rep *AnalyticsRepository) Summary(ctx context.Context) (*Summary, error) {
	transactions, err := rep.ledger.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics_repository: calc summary error %w", err)
	}

	if len(transactions) == 0 {
		return &Summary{}, nil
	}

	var credits, debits, total float64
	accounts := map[string]struct{}{}

	for _, tx := range transactions {
		total += tx.Amount
		accounts[tx.Account] = struct{}{}

		if tx.Type == models.TransactionCredit {
			credits += tx.Amount
		} else {
			debits += tx.Amount
		}
	}

	return &Summary{
		TotalTransactions:  len(transactions),
		TotalCredits:       round2(credits),
		TotalDebits:        round2(debits),
		NetBalance:         round2(credits - debits),
		AverageTransaction: round2(total / float64(len(transactions))),
		UniqueAccounts:     len(accounts),
	}, nil
}

// ByAccount groups the ledger by account, ordered by balance descending.
// Ties keep whatever order the map iteration produced.
func (rep *AnalyticsRepository) ByAccount(ctx context.Context) ([]AccountSummary, error) {
	transactions, err := rep.ledger.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics_repository: calc by-account error %w", err)
	}

	grouped := map[string]*AccountSummary{}
	for _, tx := range transactions {
		acc, ok := grouped[tx.Account]
		if !ok {
			acc = &AccountSummary{Account: tx.Account}
			grouped[tx.Account] = acc
		}

		acc.Count++
		if tx.Type == models.TransactionCredit {
			acc.Credits += tx.Amount
			acc.Balance += tx.Amount
		} else {
			acc.Debits += tx.Amount
			acc.Balance -= tx.Amount
		}
	}

	result := make([]AccountSummary, 0, len(grouped))
	for _, acc := range grouped {
		result = append(result, AccountSummary{
			Account: acc.Account,
			Credits: round2(acc.Credits),
			Debits:  round2(acc.Debits),
			Balance: round2(acc.Balance),
			Count:   acc.Count,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Balance > result[j].Balance
	})

	return result, nil
}

// Timeline buckets the ledger by hour. Bucket keys are derived from the
// stored timestamp, which is always UTC, so lexicographic order of the
// keys is chronological order.
func (rep *AnalyticsRepository) Timeline(ctx context.Context) ([]TimelineBucket, error) {
	transactions, err := rep.ledger.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics_repository: calc timeline error %w", err)
	}

	buckets := map[string]*TimelineBucket{}
	for _, tx := range transactions {
		key := tx.Timestamp.UTC().Format("2006-01-02 15:00")

		bucket, ok := buckets[key]
		if !ok {
			bucket = &TimelineBucket{Timestamp: key}
			buckets[key] = bucket
		}

		bucket.Count++
		if tx.Type == models.TransactionCredit {
			bucket.Credits += tx.Amount
		} else {
			bucket.Debits += tx.Amount
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]TimelineBucket, 0, len(keys))
	for _, key := range keys {
		bucket := buckets[key]
		result = append(result, TimelineBucket{
			Timestamp: bucket.Timestamp,
			Credits:   round2(bucket.Credits),
			Debits:    round2(bucket.Debits),
			Count:     bucket.Count,
		})
	}

	return result, nil
}

// Recent returns the limit newest records, newest first. The sort is
// stable, so records sharing a timestamp keep their append order.
func (rep *AnalyticsRepository) Recent(ctx context.Context, limit int) ([]models.Transaction, error) {
	transactions, err := rep.ledger.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics_repository: calc recent error %w", err)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.After(transactions[j].Timestamp.Time)
	})

	if limit < 0 {
		limit = 0
	}

	if limit < len(transactions) {
		transactions = transactions[:limit]
	}

	return transactions, nil
}

func (rep *AnalyticsRepository) TypeDistribution(ctx context.Context) (*TypeDistribution, error) {
	transactions, err := rep.ledger.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics_repository: calc type distribution error %w", err)
	}

	dist := &TypeDistribution{}
	for _, tx := range transactions {
		if tx.Type == models.TransactionCredit {
			dist.Credit++
		} else {
			dist.Debit++
		}
	}

	return dist, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
