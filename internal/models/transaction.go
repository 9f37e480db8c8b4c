package models

import (
	"encoding/json"
	"fmt"
	"time"
)

var TransactionCredit = "credit"
var TransactionDebit = "debit"

type Transaction struct {
	ID        string  `json:"id"`
	Account   string  `json:"account"`
	Amount    float64 `json:"amount"`
	Timestamp UTCTime `json:"timestamp"`
	Type      string  `json:"type"`
}

// Validate checks the record shape before it is allowed into the ledger.
// The id is caller-generated and only checked for presence, not uniqueness.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("models/transaction: id is required")
	}

	if t.Account == "" {
		return fmt.Errorf("models/transaction: account is required")
	}

	if t.Amount < 0 {
		return fmt.Errorf("models/transaction: amount must be non-negative")
	}

	if t.Timestamp.IsZero() {
		return fmt.Errorf("models/transaction: timestamp is required")
	}

	if t.Type != TransactionCredit && t.Type != TransactionDebit {
		return fmt.Errorf("models/transaction: type must be %q or %q", TransactionCredit, TransactionDebit)
	}

	return nil
}

// UTCTime marshals as an ISO-8601 instant normalized to UTC with a Z
// suffix, so every timestamp that reaches the ledger is stored in the
// same form regardless of the offset the client sent.
type UTCTime struct {
	time.Time
}

func (t UTCTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func (t *UTCTime) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("models/transaction: timestamp must be a string %w", err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("models/transaction: parse timestamp error %w", err)
	}

	t.Time = parsed
	return nil
}
