package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CalendarID string `gorm:"size:100;not null;default:'primary';index:idx_booking_window,priority:1" json:"calendar_id"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	StartTime time.Time `gorm:"not null;index:idx_booking_window,priority:2" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	TimeZone  string    `gorm:"size:64;not null;default:'UTC'" json:"time_zone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
