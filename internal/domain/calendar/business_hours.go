package calendar

import "time"

const (
	BusinessStartHour = 9
	BusinessEndHour   = 17

	// ScanStep is the distance between candidate slot starts.
	ScanStep = 30 * time.Minute

	// MaxSlots caps every search result.
	MaxSlots = 10
)

// IsWithinBusinessHours gates a slot on its start only: hour in [9, 17)
// on a weekday, read from the wall clock without conversion. A slot that
// starts at 16:30 and runs past 17:00 still passes.
func IsWithinBusinessHours(start time.Time) bool {
	switch start.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	h := start.Hour()
	return h >= BusinessStartHour && h < BusinessEndHour
}

// Overlaps uses strict inequalities, so touching endpoints do not overlap.
func Overlaps(start, end time.Time, b BusyInterval) bool {
	return start.Before(b.End) && end.After(b.Start)
}

// FirstConflict reports the first busy interval overlapping [start, end).
func FirstConflict(start, end time.Time, busy []BusyInterval) (BusyInterval, bool) {
	for _, b := range busy {
		if Overlaps(start, end, b) {
			return b, true
		}
	}
	return BusyInterval{}, false
}
