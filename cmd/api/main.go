package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-assistant/internal/audit"
	"github.com/BruksfildServices01/booking-assistant/internal/config"
	dbpkg "github.com/BruksfildServices01/booking-assistant/internal/db"
	domain "github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/infra/google"
	infraRepo "github.com/BruksfildServices01/booking-assistant/internal/infra/repository"
	"github.com/BruksfildServices01/booking-assistant/internal/logger"
	"github.com/BruksfildServices01/booking-assistant/internal/observability"
	"github.com/BruksfildServices01/booking-assistant/internal/routes"
	"github.com/BruksfildServices01/booking-assistant/internal/session"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}

	metrics := observability.NewMetrics("booking")

	auditDispatcher := audit.NewDispatcher(audit.New(db, log), log)
	defer auditDispatcher.Close()

	backend := newBackend(cfg, db, log)
	store := newSessionStore(cfg, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Dependencies{
		Config:  cfg,
		DB:      db,
		Backend: backend,
		Store:   store,
		Audit:   auditDispatcher,
		Metrics: metrics,
		Log:     log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server running",
			zap.String("addr", srv.Addr),
			zap.String("calendar_backend", backend.Name()),
			zap.String("session_store", store.Name()),
			zap.Bool("llm_configured", cfg.LLMConfigured()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	if closer, ok := store.(interface{ Close() }); ok {
		closer.Close()
	}
	log.Info("server stopped")
}

// newBackend picks the calendar backend. Anything that cannot be built
// degrades to offline, where the fallback schedule and mock bookings apply.
func newBackend(cfg *config.Config, db *gorm.DB, log *zap.Logger) domain.Backend {
	switch cfg.CalendarBackend {
	case config.BackendLedger:
		if db == nil {
			log.Warn("ledger backend needs DATABASE_URL, running offline")
			return domain.Offline{}
		}
		return infraRepo.NewBookingGormRepository(db)

	case config.BackendGoogle:
		cal, err := google.NewFromFiles(context.Background(), cfg.GoogleCredentialsFile, cfg.GoogleTokenFile)
		if err != nil {
			log.Warn("google calendar unavailable, running offline", zap.Error(err))
			return domain.Offline{}
		}
		return cal
	}

	return domain.Offline{}
}

func newSessionStore(cfg *config.Config, log *zap.Logger) session.Store {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore(cfg.SessionTTL)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, keeping sessions in memory",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		_ = client.Close()
		return session.NewMemoryStore(cfg.SessionTTL)
	}

	return session.NewRedisStore(client, cfg.SessionTTL)
}
