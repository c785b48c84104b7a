package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-assistant/internal/audit"
	"github.com/BruksfildServices01/booking-assistant/internal/config"
	"github.com/BruksfildServices01/booking-assistant/internal/conversation"
	domain "github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/handlers"
	infraRepo "github.com/BruksfildServices01/booking-assistant/internal/infra/repository"
	"github.com/BruksfildServices01/booking-assistant/internal/middleware"
	"github.com/BruksfildServices01/booking-assistant/internal/observability"
	"github.com/BruksfildServices01/booking-assistant/internal/session"
	ucCalendar "github.com/BruksfildServices01/booking-assistant/internal/usecase/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/web"
)

// Dependencies are the singletons built in main. DB may be nil.
type Dependencies struct {
	Config  *config.Config
	DB      *gorm.DB
	Backend domain.Backend
	Store   session.Store
	Audit   *audit.Dispatcher
	Metrics *observability.Metrics
	Log     *zap.Logger

	// Now overrides the router clock in tests.
	Now func() time.Time
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// USE CASES
	// ======================================================
	fetchBusyUC := ucCalendar.NewFetchBusy(deps.Backend, deps.Metrics, log)
	findSlotsUC := ucCalendar.NewFindSlots(fetchBusyUC, deps.Metrics)
	bookUC := ucCalendar.NewBookAppointment(deps.Backend, deps.Audit, deps.Metrics, log)

	var opts []conversation.Option
	if deps.Now != nil {
		opts = append(opts, conversation.WithClock(deps.Now))
	}
	router := conversation.NewRouter(findSlotsUC, bookUC, opts...)

	// ======================================================
	// HANDLERS
	// ======================================================
	var ledger handlers.BookingLister
	if deps.DB != nil {
		ledger = infraRepo.NewBookingGormRepository(deps.DB)
	}

	chatHandler := handlers.NewChatHandler(
		router,
		deps.Store,
		deps.Audit,
		deps.Metrics,
		handlers.ServiceInfo{
			Version:         deps.Config.Version,
			CalendarBackend: deps.Backend.Name(),
			LLMConfigured:   deps.Config.LLMConfigured(),
		},
		log,
	)
	slotsHandler := handlers.NewSlotsHandler(findSlotsUC, log)
	bookingsHandler := handlers.NewBookingsHandler(bookUC, ledger, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB, log)
	webHandler := handlers.NewWebHandler(deps.Config.Version)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.SetHTMLTemplate(web.Templates())
	r.GET("/app", webHandler.App)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", chatHandler.Health)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	limiter := middleware.NewRateLimiter(deps.Config.RateLimitPerMin, log)

	api := r.Group("/")
	api.Use(limiter.Middleware())
	{
		api.GET("/", chatHandler.Root)
		api.POST("/chat", chatHandler.Chat)
		api.POST("/reset", chatHandler.Reset)

		api.GET("/slots", slotsHandler.List)
		api.POST("/bookings", bookingsHandler.Create)
		api.GET("/bookings", bookingsHandler.List)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
