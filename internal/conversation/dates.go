package conversation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/booking-assistant/internal/timezone"
)

const (
	searchHour   = 10
	searchWindow = 7 * 24 * time.Hour
)

var firstNumber = regexp.MustCompile(`\d+`)

// ExtractSearchStart understands only "tomorrow" and "next week"; anything
// else, including explicit times, resolves to tomorrow at 10:00.
func ExtractSearchStart(now time.Time, message string) time.Time {
	msg := strings.ToLower(message)

	dt := now.Add(24 * time.Hour)
	switch {
	case strings.Contains(msg, "tomorrow"):
		dt = now.Add(24 * time.Hour)
	case strings.Contains(msg, "next week"):
		dt = now.Add(7 * 24 * time.Hour)
	}
	return timezone.AtHour(dt, searchHour)
}

// ExtractSelection returns the first run of digits in the message.
func ExtractSelection(message string) (int, bool) {
	m := firstNumber.FindString(message)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// Too large to index anything; still a selection attempt.
		return 0, true
	}
	return n, true
}
