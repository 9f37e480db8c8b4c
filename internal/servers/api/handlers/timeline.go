package handlers

import (
	"context"
	"net/http"

	"github.com/vysogota0399/bank_ledger/internal/logging"
	"github.com/vysogota0399/bank_ledger/internal/repositories"
	"go.uber.org/zap"
)

type TimelineHandler struct {
	lg         *logging.ZapLogger
	repository TimelineRepository
}

type TimelineRepository interface {
	Timeline(ctx context.Context) ([]repositories.TimelineBucket, error)
}

func NewTimelineHandler(repository TimelineRepository, lg *logging.ZapLogger) *TimelineHandler {
	return &TimelineHandler{repository: repository, lg: lg}
}

func (h *TimelineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	timeline, err := h.repository.Timeline(ctx)
	if err != nil {
		h.lg.ErrorCtx(ctx, "calculate timeline failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "calculate timeline failed")
		return
	}

	respondJSON(w, http.StatusOK, timeline)
}
