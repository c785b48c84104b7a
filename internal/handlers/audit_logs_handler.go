package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-assistant/internal/httperr"
	"github.com/BruksfildServices01/booking-assistant/internal/httpresp"
	"github.com/BruksfildServices01/booking-assistant/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log *zap.Logger) *AuditLogsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuditLogsHandler{db: db, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	if h.db == nil {
		httperr.NotFound(c, "ledger_disabled", "No audit table is configured.")
		return
	}

	page, limit := pagination(c)
	offset := (page - 1) * limit

	action := c.Query("action")
	entity := c.Query("entity")
	sessionID := c.Query("session_id")

	var from, to time.Time
	if s := c.Query("from"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD.")
			return
		}
		from = d
	}
	if s := c.Query("to"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD.")
			return
		}
		to = d.Add(24 * time.Hour)
	}

	base := func() *gorm.DB {
		q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

		if action != "" {
			q = q.Where("action = ?", action)
		}
		if entity != "" {
			q = q.Where("entity = ?", entity)
		}
		if sessionID != "" {
			q = q.Where("session_id = ?", sessionID)
		}
		if !from.IsZero() {
			q = q.Where("created_at >= ?", from)
		}
		if !to.IsZero() {
			q = q.Where("created_at < ?", to)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		h.log.Error("count audit logs", zap.Error(err))
		httperr.Internal(c, "audit_count_failed", "Error counting audit logs.")
		return
	}

	var logs []models.AuditLog
	if err := base().
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		h.log.Error("list audit logs", zap.Error(err))
		httperr.Internal(c, "audit_list_failed", "Error listing audit logs.")
		return
	}

	httpresp.Page(c, logs, page, limit, total)
}
