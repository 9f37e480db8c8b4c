package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/models"
	"go.uber.org/zap"
)

type CreateTransactionHandler struct {
	lg         *logging.ZapLogger
	repository TransactionsRepository
}

type TransactionsRepository interface {
	Create(ctx context.Context, in *models.Transaction) error
}

func NewCreateTransactionHandler(repository TransactionsRepository, lg *logging.ZapLogger) *CreateTransactionHandler {
	return &CreateTransactionHandler{repository: repository, lg: lg}
}

// ServeHTTP accepts one transaction and appends it to the ledger. The
// x-api-key header the generator sends is deliberately not verified; the
// endpoint is as open as the original service it replaces.
func (h *CreateTransactionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tx := models.Transaction{}
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid transaction payload: "+err.Error())
		return
	}

	if err := tx.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.repository.Create(ctx, &tx); err != nil {
		h.lg.ErrorCtx(ctx, "save transaction failed", zap.Error(err), zap.String("transaction_id", tx.ID))
		respondError(w, http.StatusInternalServerError, "save transaction failed")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"status": "accepted", "id": tx.ID})
}
