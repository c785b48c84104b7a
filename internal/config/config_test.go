package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CALENDAR_BACKEND", "")
	t.Setenv("SESSION_TTL", "")

	cfg := FromViper(newViper())

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, BackendGoogle, cfg.CalendarBackend)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("CALENDAR_BACKEND", "Ledger")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("REDIS_DB", "3")

	cfg := FromViper(newViper())

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, BackendLedger, cfg.CalendarBackend)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.LLMConfigured())
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestUnknownBackendFallsBackToGoogle(t *testing.T) {
	t.Setenv("CALENDAR_BACKEND", "outlook")

	cfg := FromViper(newViper())

	assert.Equal(t, BackendGoogle, cfg.CalendarBackend)
}
