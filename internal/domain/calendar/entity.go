package calendar

import (
	"time"

	"github.com/BruksfildServices01/booking-assistant/internal/timezone"
)

// BusyInterval is a half-open [Start, End) commitment on the calendar.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Slot is a bookable candidate produced by the slot finder.
type Slot struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Display string    `json:"display"`
}

func NewSlot(start time.Time, duration time.Duration) Slot {
	return Slot{
		Start:   start,
		End:     start.Add(duration),
		Display: start.Format(timezone.LayoutDisplay),
	}
}

// Event is what gets written to a backend when a slot is booked.
type Event struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
}

func NewEvent(start, end time.Time, title, description string) Event {
	return Event{
		Title:       title,
		Description: description,
		Start:       start,
		End:         end,
		TimeZone:    timezone.Label,
	}
}
