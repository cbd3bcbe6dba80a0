// Package config loads the engine configuration once at startup into an
// explicit struct that is passed down. Nothing in the codebase reads the
// environment after Load returns; there is no hidden process-wide state.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	JWTSecret string

	RedisAddr   string
	RedisPrefix string

	// RemoteBaseURL is the system-of-record endpoint the engine syncs
	// against. In demo mode it is rewritten to the in-process sor service.
	RemoteBaseURL string

	// DemoMode serves the bundled system of record (requires DatabaseURL)
	// instead of an external one.
	DemoMode    bool
	DatabaseURL string

	// SyncSchedule is the cron spec for the periodic background check.
	SyncSchedule string
}

// Load reads .env (when present) then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using environment variables directly.")
	}

	cfg := Config{
		Port:          getenv("PORT", "8000"),
		JWTSecret:     getenv("JWT_SECRET", "solid_secret_key"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPrefix:   getenv("REDIS_PREFIX", "medibook:"),
		RemoteBaseURL: getenv("REMOTE_BASE_URL", ""),
		DemoMode:      os.Getenv("DEMO_MODE") == "true",
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SyncSchedule:  getenv("SYNC_SCHEDULE", "@every 5m"),
	}
	if cfg.DemoMode && cfg.RemoteBaseURL == "" {
		cfg.RemoteBaseURL = "http://127.0.0.1:" + cfg.Port + "/sor"
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
