package dto

import (
	"time"

	"github.com/BruksfildServices01/booking-assistant/internal/models"
)

type BookingListDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	TimeZone    string    `json:"time_zone"`
}

func BookingListFromModels(rows []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(rows))
	for _, b := range rows {
		out = append(out, BookingListDTO{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			TimeZone:    b.TimeZone,
		})
	}
	return out
}
