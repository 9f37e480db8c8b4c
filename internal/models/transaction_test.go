package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() Transaction {
	return Transaction{
		ID:        "tx-1",
		Account:   "A123",
		Amount:    100.00,
		Timestamp: UTCTime{Time: time.Date(2025, 8, 25, 12, 30, 0, 0, time.UTC)},
		Type:      TransactionCredit,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(tx *Transaction)
		wantErr bool
	}{
		{name: "valid credit", mutate: func(tx *Transaction) {}},
		{name: "valid debit", mutate: func(tx *Transaction) { tx.Type = TransactionDebit }},
		{name: "zero amount", mutate: func(tx *Transaction) { tx.Amount = 0 }},
		{name: "missing id", mutate: func(tx *Transaction) { tx.ID = "" }, wantErr: true},
		{name: "missing account", mutate: func(tx *Transaction) { tx.Account = "" }, wantErr: true},
		{name: "negative amount", mutate: func(tx *Transaction) { tx.Amount = -1 }, wantErr: true},
		{name: "zero timestamp", mutate: func(tx *Transaction) { tx.Timestamp = UTCTime{} }, wantErr: true},
		{name: "unknown type", mutate: func(tx *Transaction) { tx.Type = "transfer" }, wantErr: true},
		{name: "empty type", mutate: func(tx *Transaction) { tx.Type = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUTCTimeMarshalNormalizesOffset(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	tx := validTransaction()
	tx.Timestamp = UTCTime{Time: time.Date(2025, 8, 25, 12, 30, 0, 0, loc)}

	data, err := json.Marshal(&tx)
	require.NoError(t, err)

	raw := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2025-08-25T10:30:00Z", raw["timestamp"])
}

func TestTransactionJSONRoundTrip(t *testing.T) {
	tx := validTransaction()

	data, err := json.Marshal(&tx)
	require.NoError(t, err)

	decoded := Transaction{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, tx.ID, decoded.ID)
	assert.Equal(t, tx.Account, decoded.Account)
	assert.Equal(t, tx.Amount, decoded.Amount)
	assert.Equal(t, tx.Type, decoded.Type)
	assert.True(t, tx.Timestamp.Equal(decoded.Timestamp.Time))
}

func TestUTCTimeUnmarshalRejectsGarbage(t *testing.T) {
	tx := Transaction{}
	assert.Error(t, json.Unmarshal([]byte(`{"timestamp": "yesterday"}`), &tx))
	assert.Error(t, json.Unmarshal([]byte(`{"timestamp": 12345}`), &tx))
}
