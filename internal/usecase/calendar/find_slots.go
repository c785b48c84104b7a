package calendar

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/httperr"
	"github.com/BruksfildServices01/booking-assistant/internal/observability"
)

type FindSlots struct {
	busy    *FetchBusy
	metrics *observability.Metrics
}

func NewFindSlots(busy *FetchBusy, metrics *observability.Metrics) *FindSlots {
	return &FindSlots{busy: busy, metrics: metrics}
}

// Execute walks the window in 30 minute steps and keeps every start that
// is inside business hours and clear of busy time, up to ten slots.
func (uc *FindSlots) Execute(
	ctx context.Context,
	windowStart time.Time,
	windowEnd time.Time,
	durationMinutes int,
) ([]domain.Slot, error) {

	if !windowStart.Before(windowEnd) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidWindow)
	}
	if durationMinutes <= 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDuration)
	}

	busy := uc.busy.Execute(ctx, windowStart, windowEnd)
	duration := time.Duration(durationMinutes) * time.Minute

	slots := make([]domain.Slot, 0, domain.MaxSlots)

	for cur := windowStart; cur.Before(windowEnd) && len(slots) < domain.MaxSlots; cur = cur.Add(domain.ScanStep) {
		slotEnd := cur.Add(duration)

		if _, conflict := domain.FirstConflict(cur, slotEnd, busy); conflict {
			continue
		}

		if !domain.IsWithinBusinessHours(cur) {
			continue
		}

		slots = append(slots, domain.NewSlot(cur, duration))
	}

	if uc.metrics != nil {
		uc.metrics.SlotSearchResults.Observe(float64(len(slots)))
	}

	return slots, nil
}
