package handlers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/booking-assistant/internal/conversation"
	"github.com/BruksfildServices01/booking-assistant/internal/dto"
	"github.com/BruksfildServices01/booking-assistant/internal/httperr"
	"github.com/BruksfildServices01/booking-assistant/internal/httpresp"
	"github.com/BruksfildServices01/booking-assistant/internal/models"
	"github.com/BruksfildServices01/booking-assistant/internal/timezone"
	ucCalendar "github.com/BruksfildServices01/booking-assistant/internal/usecase/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/validators"
)

const (
	defaultListDays = 30
	defaultLimit    = 50
	maxLimit        = 200
)

type BookingLister interface {
	ListBookings(ctx context.Context, from, to time.Time, limit, offset int) ([]models.Booking, int64, error)
}

type BookingsHandler struct {
	booker conversation.Booker
	ledger BookingLister
	log    *zap.Logger
}

// NewBookingsHandler accepts a nil ledger when no database is configured;
// listing then answers 404.
func NewBookingsHandler(booker conversation.Booker, ledger BookingLister, log *zap.Logger) *BookingsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingsHandler{booker: booker, ledger: ledger, log: log}
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingsHandler) Create(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "start_time, end_time and title are required.")
		return
	}

	if !validators.IsTitleValid(req.Title) {
		httperr.BadRequest(c, "invalid_title", "Title must be between 1 and 255 characters.")
		return
	}

	start, end, err := validators.ParseWindow(req.StartTime, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidWindow, "start_time must be before end_time.")
		return
	}

	ok := h.booker.Execute(c.Request.Context(), ucCalendar.BookAppointmentInput{
		SessionID:   strings.TrimSpace(req.SessionID),
		Start:       start,
		End:         end,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
	})

	httpresp.OK(c, dto.BookingResponse{Success: ok})
}

// ======================================================
// LIST
// ======================================================

func (h *BookingsHandler) List(c *gin.Context) {
	if h.ledger == nil {
		httperr.NotFound(c, "ledger_disabled", "No booking ledger is configured.")
		return
	}

	page, limit := pagination(c)

	today := timezone.AtHour(timezone.Now(), 0)
	from := today
	if s := c.Query("from"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD.")
			return
		}
		from = d
	}

	to := from.AddDate(0, 0, defaultListDays)
	if s := c.Query("to"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD.")
			return
		}
		to = d.Add(24 * time.Hour)
	}

	rows, total, err := h.ledger.ListBookings(c.Request.Context(), from, to, limit, (page-1)*limit)
	if err != nil {
		h.log.Error("list bookings", zap.Error(err))
		httperr.Internal(c, "booking_list_failed", "Error listing bookings.")
		return
	}

	httpresp.Page(c, dto.BookingListFromModels(rows), page, limit, total)
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return page, limit
}
