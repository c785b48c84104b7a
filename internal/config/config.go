package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendGoogle  = "google"
	BackendLedger  = "ledger"
	BackendOffline = "offline"
)

type Config struct {
	ServerPort string
	Env        string
	LogLevel   string
	Version    string

	// Only reported on /health; the keyword router never calls a model.
	OpenAIAPIKey string

	CalendarBackend       string
	GoogleCredentialsFile string
	GoogleTokenFile       string

	DBUrl string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionTTL      time.Duration
	RateLimitPerMin int
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("CALENDAR_BACKEND", BackendGoogle)
	v.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	v.SetDefault("GOOGLE_TOKEN_FILE", "token.json")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("RATE_LIMIT_PER_MIN", 120)
	return v
}

func FromViper(v *viper.Viper) *Config {
	ttl := v.GetDuration("SESSION_TTL")
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	backend := strings.ToLower(strings.TrimSpace(v.GetString("CALENDAR_BACKEND")))
	switch backend {
	case BackendGoogle, BackendLedger, BackendOffline:
	default:
		backend = BackendGoogle
	}

	return &Config{
		ServerPort:            v.GetString("PORT"),
		Env:                   v.GetString("ENV"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		Version:               v.GetString("APP_VERSION"),
		OpenAIAPIKey:          v.GetString("OPENAI_API_KEY"),
		CalendarBackend:       backend,
		GoogleCredentialsFile: v.GetString("GOOGLE_CREDENTIALS_FILE"),
		GoogleTokenFile:       v.GetString("GOOGLE_TOKEN_FILE"),
		DBUrl:                 v.GetString("DATABASE_URL"),
		RedisAddr:             v.GetString("REDIS_ADDR"),
		RedisPassword:         v.GetString("REDIS_PASSWORD"),
		RedisDB:               v.GetInt("REDIS_DB"),
		SessionTTL:            ttl,
		RateLimitPerMin:       v.GetInt("RATE_LIMIT_PER_MIN"),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) LLMConfigured() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}
