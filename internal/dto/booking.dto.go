package dto

import (
	"github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/timezone"
)

// Times are naive ISO-8601 strings, e.g. "2024-06-03T10:00:00".
type BookingRequest struct {
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	SessionID   string `json:"session_id"`
}

type BookingResponse struct {
	Success bool `json:"success"`
}

type SlotDTO struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Display string `json:"display"`
}

func SlotsFromDomain(slots []calendar.Slot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotDTO{
			Start:   s.Start.Format(timezone.LayoutISO),
			End:     s.End.Format(timezone.LayoutISO),
			Display: s.Display,
		})
	}
	return out
}
