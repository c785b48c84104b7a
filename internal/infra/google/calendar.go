package google

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	googleoauth "golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	domain "github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/timezone"
)

// Calendar talks to the Google Calendar v3 API on the primary calendar.
type Calendar struct {
	svc    *gcal.Service
	tracer trace.Tracer
}

// New wraps an already built service. Tests point it at an httptest server.
func New(svc *gcal.Service) *Calendar {
	return &Calendar{
		svc:    svc,
		tracer: otel.Tracer("booking.infra.google"),
	}
}

// NewFromFiles authenticates with an OAuth client file and a stored token.
// Missing or unreadable artifacts come back as ErrUnavailable so startup
// can fall through to the offline backend.
func NewFromFiles(ctx context.Context, credentialsFile, tokenFile string) (*Calendar, error) {
	raw, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("google: read credentials: %w: %v", domain.ErrUnavailable, err)
	}

	conf, err := googleoauth.ConfigFromJSON(raw, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("google: parse credentials: %w: %v", domain.ErrUnavailable, err)
	}

	tok, err := readToken(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("google: read token: %w: %v", domain.ErrUnavailable, err)
	}

	ts := &persistingTokenSource{
		base: conf.TokenSource(ctx, tok),
		path: tokenFile,
		last: tok.AccessToken,
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("google: build service: %w: %v", domain.ErrUnavailable, err)
	}

	return New(svc), nil
}

func (c *Calendar) Name() string {
	return "google"
}

func (c *Calendar) FreeBusy(ctx context.Context, start, end time.Time) ([]domain.BusyInterval, error) {
	ctx, span := c.tracer.Start(ctx, "google.freebusy_query")
	defer span.End()
	span.SetAttributes(
		attribute.String("calendar.id", domain.PrimaryCalendarID),
		attribute.String("window.start", start.Format(time.RFC3339)),
		attribute.String("window.end", end.Format(time.RFC3339)),
	)

	req := &gcal.FreeBusyRequest{
		TimeMin: timezone.Naive(start).Format(time.RFC3339),
		TimeMax: timezone.Naive(end).Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: domain.PrimaryCalendarID}},
	}

	resp, err := c.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("google: freebusy: %w: %v", domain.ErrUnavailable, err)
	}

	cal, ok := resp.Calendars[domain.PrimaryCalendarID]
	if !ok {
		return []domain.BusyInterval{}, nil
	}

	out := make([]domain.BusyInterval, 0, len(cal.Busy))
	for _, p := range cal.Busy {
		bs, err := timezone.ParseInstant(p.Start)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("google: busy start %q: %w: %v", p.Start, domain.ErrUnavailable, err)
		}
		be, err := timezone.ParseInstant(p.End)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("google: busy end %q: %w: %v", p.End, domain.ErrUnavailable, err)
		}
		out = append(out, domain.BusyInterval{Start: bs, End: be})
	}

	span.SetAttributes(attribute.Int("busy.count", len(out)))
	return out, nil
}

func (c *Calendar) InsertEvent(ctx context.Context, ev domain.Event) error {
	ctx, span := c.tracer.Start(ctx, "google.events_insert")
	defer span.End()
	span.SetAttributes(attribute.String("calendar.id", domain.PrimaryCalendarID))

	event := &gcal.Event{
		Summary:     ev.Title,
		Description: ev.Description,
		Start: &gcal.EventDateTime{
			DateTime: ev.Start.Format(timezone.LayoutISO),
			TimeZone: ev.TimeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: ev.End.Format(timezone.LayoutISO),
			TimeZone: ev.TimeZone,
		},
	}

	if _, err := c.svc.Events.Insert(domain.PrimaryCalendarID, event).Context(ctx).Do(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("google: insert event: %w: %v", domain.ErrUnavailable, err)
	}
	return nil
}

var _ domain.Backend = (*Calendar)(nil)
