package models

// TransactionEvent is the payload consumed from the transaction_received
// topic: the transaction itself plus the producer's event uuid.
type TransactionEvent struct {
	UUID        string       `json:"uuid"`
	Transaction *Transaction `json:"transaction"`
}
