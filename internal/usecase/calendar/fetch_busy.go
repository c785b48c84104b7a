package calendar

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/observability"
)

// FetchBusy reads busy intervals and swaps in the synthetic schedule when
// the backend fails. It never retries.
type FetchBusy struct {
	backend domain.Backend
	metrics *observability.Metrics
	log     *zap.Logger
}

func NewFetchBusy(
	backend domain.Backend,
	metrics *observability.Metrics,
	log *zap.Logger,
) *FetchBusy {
	if log == nil {
		log = zap.NewNop()
	}
	return &FetchBusy{
		backend: backend,
		metrics: metrics,
		log:     log,
	}
}

func (uc *FetchBusy) Execute(
	ctx context.Context,
	windowStart time.Time,
	windowEnd time.Time,
) []domain.BusyInterval {

	busy, err := uc.backend.FreeBusy(ctx, windowStart, windowEnd)
	if err == nil {
		return busy
	}

	uc.log.Warn("free/busy unavailable, serving fallback schedule",
		zap.String("backend", uc.backend.Name()),
		zap.Time("window_start", windowStart),
		zap.Time("window_end", windowEnd),
		zap.Error(err),
	)
	if uc.metrics != nil {
		uc.metrics.CalendarFallbacks.WithLabelValues("free_busy").Inc()
	}

	return domain.FallbackBusy(windowStart, windowEnd)
}
