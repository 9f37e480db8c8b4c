package handlers

import (
	"context"
	"net/http"

	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/repositories"
	"go.uber.org/zap"
)

type TypeDistributionHandler struct {
	lg         *logging.ZapLogger
	repository TypeDistributionRepository
}

type TypeDistributionRepository interface {
	TypeDistribution(ctx context.Context) (*repositories.TypeDistribution, error)
}

func NewTypeDistributionHandler(repository TypeDistributionRepository, lg *logging.ZapLogger) *TypeDistributionHandler {
	return &TypeDistributionHandler{repository: repository, lg: lg}
}

func (h *TypeDistributionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dist, err := h.repository.TypeDistribution(ctx)
	if err != nil {
		h.lg.ErrorCtx(ctx, "calculate type distribution failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "calculate type distribution failed")
		return
	}

	respondJSON(w, http.StatusOK, dist)
}
