package timezone

import "time"

// Label is sent to calendar backends alongside every naive timestamp.
const Label = "UTC"

const (
	// LayoutMinute is the storage form of slot endpoints.
	LayoutMinute = "2006-01-02 15:04"
	// LayoutISO is a naive ISO-8601 timestamp without offset.
	LayoutISO = "2006-01-02T15:04:05"
	// LayoutDisplay renders a slot start for people.
	LayoutDisplay = "January 02, 2006 at 03:04 PM"
)

func Now() time.Time {
	return time.Now().UTC()
}

// Naive reinterprets t's wall clock as UTC without converting it.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// AtHour keeps the date of t and replaces its time of day.
func AtHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, time.UTC)
}

// ParseInstant parses an RFC 3339 timestamp from a calendar backend and
// converts it to UTC, so offsets are applied rather than dropped.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ParseNaive accepts RFC 3339 and the naive layouts used on the wire.
// Offsets are dropped, not applied.
func ParseNaive(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, LayoutISO, "2006-01-02T15:04", LayoutMinute} {
		if t, err := time.Parse(layout, s); err == nil {
			return Naive(t), nil
		}
	}
	_, err := time.Parse(time.RFC3339, s)
	return time.Time{}, err
}
