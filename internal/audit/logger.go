package audit

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-assistant/internal/models"
)

// Logger persists audit entries to the audit_logs table, or to the process
// log when no database is configured.
type Logger struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{db: db, log: log}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	if l.db == nil {
		l.log.Info("audit",
			zap.String("action", ev.Action),
			zap.String("entity", ev.Entity),
			zap.String("session_id", ev.SessionID),
			zap.String("metadata", metaJSON),
		)
		return nil
	}

	entry := models.AuditLog{
		SessionID: ev.SessionID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
	}

	return l.db.Create(&entry).Error
}
