package handlers

import (
	"context"
	"net/http"

	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/repositories"
	"go.uber.org/zap"
)

type SummaryHandler struct {
	lg         *logging.ZapLogger
	repository SummaryRepository
}

type SummaryRepository interface {
	Summary(ctx context.Context) (*repositories.Summary, error)
}

func NewSummaryHandler(repository SummaryRepository, lg *logging.ZapLogger) *SummaryHandler {
	return &SummaryHandler{repository: repository, lg: lg}
}

func (h *SummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.repository.Summary(ctx)
	if err != nil {
		h.lg.ErrorCtx(ctx, "calculate summary failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "calculate summary failed")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
