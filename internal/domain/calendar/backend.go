package calendar

import (
	"context"
	"errors"
	"time"
)

// PrimaryCalendarID is the only calendar identity the assistant reads or writes.
const PrimaryCalendarID = "primary"

// ErrUnavailable marks any failure to reach or use a calendar backend.
// Callers decide the fallback; backends never fabricate data.
var ErrUnavailable = errors.New("calendar backend unavailable")

type Backend interface {
	// FreeBusy returns intervals intersecting [start, end) ordered by start.
	FreeBusy(ctx context.Context, start, end time.Time) ([]BusyInterval, error)

	InsertEvent(ctx context.Context, ev Event) error

	Name() string
}

// Offline is the backend used when nothing is configured.
type Offline struct{}

func (Offline) FreeBusy(context.Context, time.Time, time.Time) ([]BusyInterval, error) {
	return nil, ErrUnavailable
}

func (Offline) InsertEvent(context.Context, Event) error {
	return ErrUnavailable
}

func (Offline) Name() string {
	return "offline"
}

var _ Backend = Offline{}
