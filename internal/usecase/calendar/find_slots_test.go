package calendar

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/httperr"
	"github.com/BruksfildServices01/booking-assistant/internal/observability"
)

func newFindSlots(backend domain.Backend, m *observability.Metrics) *FindSlots {
	return NewFindSlots(NewFetchBusy(backend, m, nil), m)
}

func TestFindSlotsBoundaryTouchIsAvailable(t *testing.T) {
	backend := &fakeBackend{busy: []domain.BusyInterval{{Start: at(3, 10, 0), End: at(3, 11, 0)}}}
	start := at(3, 9, 0)

	slots, err := newFindSlots(backend, nil).Execute(context.Background(), start, start.Add(7*24*time.Hour), 60)
	require.NoError(t, err)
	require.Len(t, slots, domain.MaxSlots)

	starts := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start)
	}

	assert.Equal(t, at(3, 9, 0), slots[0].Start, "09:00-10:00 touches the busy start")
	assert.Equal(t, at(3, 10, 0), slots[0].End)
	assert.NotContains(t, starts, at(3, 9, 30))
	assert.NotContains(t, starts, at(3, 10, 0))
	assert.NotContains(t, starts, at(3, 10, 30))
	assert.Equal(t, at(3, 11, 0), slots[1].Start, "11:00 starts at the busy end")
	assert.Equal(t, "June 03, 2024 at 09:00 AM", slots[0].Display)
}

func TestFindSlotsRespectsBusinessHoursAndWeekends(t *testing.T) {
	// Friday 15:00 through Monday 10:00.
	start := at(7, 15, 0)
	end := at(10, 10, 0)

	slots, err := newFindSlots(&fakeBackend{}, nil).Execute(context.Background(), start, end, 60)
	require.NoError(t, err)

	var got []string
	for _, s := range slots {
		got = append(got, s.Start.Format("Mon 15:04"))
	}
	assert.Equal(t, []string{"Fri 15:00", "Fri 15:30", "Fri 16:00", "Fri 16:30", "Mon 09:00", "Mon 09:30"}, got)

	last := slots[3]
	assert.Equal(t, at(7, 17, 30), last.End, "slots may run past closing, only the start is gated")
}

func TestFindSlotsDurationDoesNotChangeStep(t *testing.T) {
	start := at(3, 9, 0)

	slots, err := newFindSlots(&fakeBackend{}, nil).Execute(context.Background(), start, at(3, 11, 0), 90)
	require.NoError(t, err)

	require.Len(t, slots, 4)
	for i, s := range slots {
		assert.Equal(t, start.Add(time.Duration(i)*30*time.Minute), s.Start)
		assert.Equal(t, s.Start.Add(90*time.Minute), s.End)
	}
}

func TestFindSlotsUsesFallbackWhenBackendFails(t *testing.T) {
	m := observability.NewMetrics("test")
	backend := &fakeBackend{busyErr: fmt.Errorf("google: %w", domain.ErrUnavailable)}

	// Window starting at midnight puts the synthetic busy hour at 10:00.
	start := at(3, 9, 0).Add(-9 * time.Hour)
	slots, err := newFindSlots(backend, m).Execute(context.Background(), start, start.Add(24*time.Hour), 60)
	require.NoError(t, err)

	for _, s := range slots {
		assert.False(t, s.Start.Before(at(3, 11, 0)) && s.End.After(at(3, 10, 0)), "slot %s overlaps fallback busy hour", s.Display)
	}
	assert.Equal(t, at(3, 9, 0), slots[0].Start)
	assert.Equal(t, at(3, 11, 0), slots[1].Start)
	assert.Equal(t, 1, backend.freeBusyCalls, "no retries")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalendarFallbacks.WithLabelValues("free_busy")))
}

func TestFindSlotsProperties(t *testing.T) {
	busy := []domain.BusyInterval{
		{Start: at(3, 9, 15), End: at(3, 9, 45)},
		{Start: at(4, 12, 0), End: at(4, 16, 0)},
		{Start: at(5, 0, 0), End: at(5, 13, 0)},
	}
	uc := newFindSlots(&fakeBackend{busy: busy}, nil)

	for _, window := range []struct{ start, end time.Time }{
		{at(3, 0, 0), at(10, 0, 0)},
		{at(4, 11, 0), at(4, 18, 0)},
		{at(5, 8, 0), at(5, 15, 0)},
		{at(3, 9, 0), at(3, 10, 0)},
	} {
		slots, err := uc.Execute(context.Background(), window.start, window.end, 60)
		require.NoError(t, err)

		ticks := int(window.end.Sub(window.start) / domain.ScanStep)
		assert.LessOrEqual(t, len(slots), domain.MaxSlots)
		assert.LessOrEqual(t, len(slots), ticks)

		for _, s := range slots {
			assert.True(t, domain.IsWithinBusinessHours(s.Start))
			_, conflict := domain.FirstConflict(s.Start, s.End, busy)
			assert.False(t, conflict, "slot %s overlaps busy time", s.Display)
		}
	}
}

func TestFindSlotsRejectsBadInput(t *testing.T) {
	uc := newFindSlots(&fakeBackend{}, nil)

	_, err := uc.Execute(context.Background(), at(3, 10, 0), at(3, 10, 0), 60)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidWindow))

	_, err = uc.Execute(context.Background(), at(3, 10, 0), at(3, 12, 0), 0)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDuration))
}
