package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/booking-assistant/internal/conversation"
	"github.com/BruksfildServices01/booking-assistant/internal/dto"
	"github.com/BruksfildServices01/booking-assistant/internal/httperr"
	"github.com/BruksfildServices01/booking-assistant/internal/httpresp"
	"github.com/BruksfildServices01/booking-assistant/internal/validators"
)

type SlotsHandler struct {
	finder conversation.SlotFinder
	log    *zap.Logger
}

func NewSlotsHandler(finder conversation.SlotFinder, log *zap.Logger) *SlotsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SlotsHandler{finder: finder, log: log}
}

// List serves GET /slots?start=&end=&duration=.
func (h *SlotsHandler) List(c *gin.Context) {
	start, end, err := validators.ParseWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidWindow, "start and end must be ISO timestamps with start before end.")
		return
	}

	durStr, present := c.GetQuery("duration")
	minutes, _ := strconv.Atoi(durStr)
	minutes, err = validators.Duration(minutes, present)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDuration, "duration must be a positive number of minutes.")
		return
	}

	slots, err := h.finder.Execute(c.Request.Context(), start, end, minutes)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeInvalidWindow):
			httperr.BadRequest(c, httperr.CodeInvalidWindow, "Invalid search window.")
		case httperr.IsBusiness(err, httperr.CodeInvalidDuration):
			httperr.BadRequest(c, httperr.CodeInvalidDuration, "Invalid duration.")
		default:
			h.log.Error("slot search failed", zap.Error(err))
			httperr.Internal(c, "slot_search_failed", "Error searching for slots.")
		}
		return
	}

	httpresp.List(c, dto.SlotsFromDomain(slots))
}
