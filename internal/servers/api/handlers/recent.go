package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/models"
	"go.uber.org/zap"
)

const defaultRecentLimit = 10

type RecentHandler struct {
	lg         *logging.ZapLogger
	repository RecentRepository
}

type RecentRepository interface {
	Recent(ctx context.Context, limit int) ([]models.Transaction, error)
}

func NewRecentHandler(repository RecentRepository, lg *logging.ZapLogger) *RecentHandler {
	return &RecentHandler{repository: repository, lg: lg}
}

func (h *RecentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "limit must be an integer")
			return
		}

		limit = parsed
	}

	transactions, err := h.repository.Recent(ctx, limit)
	if err != nil {
		h.lg.ErrorCtx(ctx, "fetch recent transactions failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "fetch recent transactions failed")
		return
	}

	respondJSON(w, http.StatusOK, transactions)
}
