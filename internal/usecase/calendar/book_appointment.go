package calendar

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/booking-assistant/internal/audit"
	domain "github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/observability"
)

type BookAppointmentInput struct {
	SessionID   string
	Start       time.Time
	End         time.Time
	Title       string
	Description string
}

// BookAppointment writes an event to the backend. A failed write is
// acknowledged as a success after logging it as a mock booking, so the
// caller always gets true.
type BookAppointment struct {
	backend domain.Backend
	audit   *audit.Dispatcher
	metrics *observability.Metrics
	log     *zap.Logger
}

func NewBookAppointment(
	backend domain.Backend,
	audit *audit.Dispatcher,
	metrics *observability.Metrics,
	log *zap.Logger,
) *BookAppointment {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookAppointment{
		backend: backend,
		audit:   audit,
		metrics: metrics,
		log:     log,
	}
}

func (uc *BookAppointment) Execute(ctx context.Context, in BookAppointmentInput) bool {
	ev := domain.NewEvent(in.Start, in.End, in.Title, in.Description)

	meta := map[string]any{
		"title":   ev.Title,
		"start":   ev.Start,
		"end":     ev.End,
		"backend": uc.backend.Name(),
	}

	if err := uc.backend.InsertEvent(ctx, ev); err != nil {
		uc.log.Warn("mock booking",
			zap.String("title", ev.Title),
			zap.Time("start", ev.Start),
			zap.Time("end", ev.End),
			zap.Error(err),
		)
		uc.record(in.SessionID, audit.ActionBookingFallback, "fallback", meta)
		return true
	}

	uc.record(in.SessionID, audit.ActionBookingCreated, "created", meta)
	return true
}

func (uc *BookAppointment) record(sessionID, action, outcome string, meta map[string]any) {
	if uc.metrics != nil {
		uc.metrics.Bookings.WithLabelValues(outcome).Inc()
	}
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			SessionID: sessionID,
			Action:    action,
			Entity:    "booking",
			Metadata:  meta,
		})
	}
}
