package handlers

import (
	"context"
	"net/http"

	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/repositories"
	"go.uber.org/zap"
)

type ByAccountHandler struct {
	lg         *logging.ZapLogger
	repository ByAccountRepository
}

type ByAccountRepository interface {
	ByAccount(ctx context.Context) ([]repositories.AccountSummary, error)
}

func NewByAccountHandler(repository ByAccountRepository, lg *logging.ZapLogger) *ByAccountHandler {
	return &ByAccountHandler{repository: repository, lg: lg}
}

func (h *ByAccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.repository.ByAccount(ctx)
	if err != nil {
		h.lg.ErrorCtx(ctx, "calculate by-account failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "calculate by-account failed")
		return
	}

	respondJSON(w, http.StatusOK, accounts)
}
