package calendar

import "time"

const fallbackBusyDays = 3

// FallbackBusy is the synthetic schedule served when the backend cannot be
// reached: one hour at windowStart+i days+10h for the first three days,
// kept only when it ends inside the window.
func FallbackBusy(windowStart, windowEnd time.Time) []BusyInterval {
	out := make([]BusyInterval, 0, fallbackBusyDays)
	for i := 0; i < fallbackBusyDays; i++ {
		start := windowStart.Add(time.Duration(i)*24*time.Hour + 10*time.Hour)
		end := start.Add(time.Hour)
		if end.After(windowEnd) {
			continue
		}
		out = append(out, BusyInterval{Start: start, End: end})
	}
	return out
}
