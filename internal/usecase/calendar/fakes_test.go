package calendar

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
)

type fakeBackend struct {
	busy      []domain.BusyInterval
	busyErr   error
	insertErr error

	freeBusyCalls int
	inserted      []domain.Event
}

func (f *fakeBackend) FreeBusy(_ context.Context, _, _ time.Time) ([]domain.BusyInterval, error) {
	f.freeBusyCalls++
	if f.busyErr != nil {
		return nil, f.busyErr
	}
	return f.busy, nil
}

func (f *fakeBackend) InsertEvent(_ context.Context, ev domain.Event) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, ev)
	return nil
}

func (f *fakeBackend) Name() string { return "fake" }

var errDown = errors.New("dial tcp: connection refused")

// 2024-06-03 is a Monday.
func at(day, hour, min int) time.Time {
	return time.Date(2024, 6, day, hour, min, 0, 0, time.UTC)
}
