package handlers

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/booking-assistant/internal/audit"
	"github.com/BruksfildServices01/booking-assistant/internal/conversation"
	"github.com/BruksfildServices01/booking-assistant/internal/dto"
	"github.com/BruksfildServices01/booking-assistant/internal/httperr"
	"github.com/BruksfildServices01/booking-assistant/internal/httpresp"
	"github.com/BruksfildServices01/booking-assistant/internal/observability"
	"github.com/BruksfildServices01/booking-assistant/internal/session"
	"github.com/BruksfildServices01/booking-assistant/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type ChatProcessor interface {
	Process(ctx context.Context, sessionID string, st *session.State, message string) (conversation.Reply, error)
}

// ServiceInfo is what /health reports about the running process.
type ServiceInfo struct {
	Version         string
	CalendarBackend string
	LLMConfigured   bool
}

type ChatHandler struct {
	router  ChatProcessor
	store   session.Store
	audit   *audit.Dispatcher
	metrics *observability.Metrics
	info    ServiceInfo
	log     *zap.Logger
}

func NewChatHandler(
	router ChatProcessor,
	store session.Store,
	audit *audit.Dispatcher,
	metrics *observability.Metrics,
	info ServiceInfo,
	log *zap.Logger,
) *ChatHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatHandler{
		router:  router,
		store:   store,
		audit:   audit,
		metrics: metrics,
		info:    info,
		log:     log,
	}
}

// ======================================================
// ROOT / HEALTH
// ======================================================

func (h *ChatHandler) Root(c *gin.Context) {
	httpresp.OK(c, dto.RootResponse{
		Message:   "Appointment Booking Agent API is running!",
		Timestamp: timezone.Now(),
	})
}

func (h *ChatHandler) Health(c *gin.Context) {
	httpresp.OK(c, dto.HealthResponse{
		Status:           "healthy",
		AgentInitialized: h.router != nil,
		LLMConfigured:    h.info.LLMConfigured,
		Timestamp:        timezone.Now(),
		Version:          h.info.Version,
		CalendarBackend:  h.info.CalendarBackend,
		SessionStore:     h.store.Name(),
	})
}

// ======================================================
// CHAT
// ======================================================

func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		httperr.BadRequest(c, "invalid_request", "A non-empty message is required.")
		return
	}

	// Clients that never send an id share one conversation.
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = session.DefaultID
	}

	var reply conversation.Reply
	err := h.store.Update(c.Request.Context(), sessionID, func(st *session.State) error {
		r, err := h.router.Process(c.Request.Context(), sessionID, st, req.Message)
		if err != nil {
			return err
		}
		reply = r
		return nil
	})
	if err != nil {
		h.log.Error("chat failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		httperr.Internal(c, "chat_failed", "Error processing message: "+err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.ChatMessages.WithLabelValues(string(reply.Intent)).Inc()
	}
	h.refreshSessionGauge(c.Request.Context())

	httpresp.OK(c, dto.ChatResponse{
		Response:         reply.Response,
		AvailableSlots:   reply.AvailableSlots,
		BookingConfirmed: reply.BookingConfirmed,
		SessionID:        sessionID,
	})
}

// ======================================================
// RESET
// ======================================================

func (h *ChatHandler) Reset(c *gin.Context) {
	// The body is optional; an empty one resets every session.
	var req dto.ResetRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			httperr.BadRequest(c, "invalid_request", "Invalid reset request.")
			return
		}
	}

	ctx := c.Request.Context()
	sessionID := strings.TrimSpace(req.SessionID)

	var err error
	if sessionID == "" {
		err = h.store.ResetAll(ctx)
	} else {
		err = h.store.Reset(ctx, sessionID)
	}
	if err != nil {
		h.log.Error("reset failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		httperr.Internal(c, "reset_failed", "Error resetting conversation: "+err.Error())
		return
	}

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			SessionID: sessionID,
			Action:    audit.ActionSessionReset,
			Entity:    "session",
			Metadata:  map[string]any{"all": sessionID == ""},
		})
	}
	h.refreshSessionGauge(ctx)

	httpresp.OK(c, dto.MessageResponse{Message: "Conversation reset successfully"})
}

func (h *ChatHandler) refreshSessionGauge(ctx context.Context) {
	if h.metrics == nil {
		return
	}
	n, err := h.store.Len(ctx)
	if err != nil {
		h.log.Warn("count sessions", zap.Error(err))
		return
	}
	h.metrics.ActiveSessions.Set(float64(n))
}
