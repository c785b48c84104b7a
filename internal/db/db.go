package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-assistant/internal/config"
	"github.com/BruksfildServices01/booking-assistant/internal/models"
)

// NewDB connects to the booking ledger. A nil *gorm.DB with nil error means
// no database is configured.
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	if cfg.DBUrl == "" {
		return nil, nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Needs btree_gist; without it the ledger still works, only without
	// database-level double-booking protection.
	if err := db.Exec(`
		DO $$
		BEGIN
			CREATE EXTENSION IF NOT EXISTS btree_gist;
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap'
			) THEN
				ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
					EXCLUDE USING gist (calendar_id WITH =, tstzrange(start_time, end_time) WITH &&);
			END IF;
		END $$;
	`).Error; err != nil {
		log.Warn("bookings overlap constraint not installed", zap.Error(err))
	}

	return db, nil
}
