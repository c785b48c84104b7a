package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/httperr"
	"github.com/BruksfildServices01/booking-assistant/internal/models"
)

// BookingGormRepository is a calendar backend kept in Postgres: bookings
// written by the assistant are the only source of busy time.
type BookingGormRepository struct {
	db         *gorm.DB
	calendarID string
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db, calendarID: domain.PrimaryCalendarID}
}

func (r *BookingGormRepository) Name() string {
	return "ledger"
}

// --------------------------------------------------
// Free / busy
// --------------------------------------------------

func (r *BookingGormRepository) FreeBusy(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]domain.BusyInterval, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"calendar_id = ? AND start_time < ? AND end_time > ?",
			r.calendarID, end, start,
		).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("ledger: free/busy: %w: %v", domain.ErrUnavailable, err)
	}

	busy := make([]domain.BusyInterval, 0, len(rows))
	for _, b := range rows {
		busy = append(busy, domain.BusyInterval{
			Start: b.StartTime.UTC(),
			End:   b.EndTime.UTC(),
		})
	}
	return busy, nil
}

// --------------------------------------------------
// Insert
// --------------------------------------------------

func (r *BookingGormRepository) InsertEvent(
	ctx context.Context,
	ev domain.Event,
) error {

	b := models.Booking{
		CalendarID:  r.calendarID,
		Title:       ev.Title,
		Description: ev.Description,
		StartTime:   ev.Start,
		EndTime:     ev.End,
		TimeZone:    ev.TimeZone,
	}

	if err := r.db.WithContext(ctx).Create(&b).Error; err != nil {
		if httperr.IsExclusionConflict(err) {
			return fmt.Errorf("ledger: %w: %w", domain.ErrUnavailable, httperr.ErrBusiness(httperr.CodeTimeConflict))
		}
		return fmt.Errorf("ledger: insert: %w: %v", domain.ErrUnavailable, err)
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	from time.Time,
	to time.Time,
	limit int,
	offset int,
) ([]models.Booking, int64, error) {

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&models.Booking{}).
			Where("calendar_id = ? AND start_time >= ? AND start_time < ?", r.calendarID, from, to)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Booking
	if err := base().
		Order("start_time ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// Compile-time check
var _ domain.Backend = (*BookingGormRepository)(nil)
