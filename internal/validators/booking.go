package validators

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/booking-assistant/internal/httperr"
	"github.com/BruksfildServices01/booking-assistant/internal/timezone"
)

const (
	MaxTitleLength  = 255
	MaxDuration     = 8 * 60
	DefaultDuration = 60
)

// ParseWindow parses a naive start/end pair and requires start < end.
func ParseWindow(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := timezone.ParseNaive(strings.TrimSpace(startStr))
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidWindow)
	}
	end, err := timezone.ParseNaive(strings.TrimSpace(endStr))
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidWindow)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidWindow)
	}
	return start, end, nil
}

// Duration accepts an empty value as the default hour.
func Duration(minutes int, present bool) (int, error) {
	if !present {
		return DefaultDuration, nil
	}
	if minutes <= 0 || minutes > MaxDuration {
		return 0, httperr.ErrBusiness(httperr.CodeInvalidDuration)
	}
	return minutes, nil
}

func IsTitleValid(title string) bool {
	t := strings.TrimSpace(title)
	return t != "" && len(t) <= MaxTitleLength
}
