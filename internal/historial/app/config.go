package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone database for hosts without one

	httpapi "github.com/benavides/historial/internal/historial/http"
	"github.com/benavides/historial/pkg/httpx"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./historial.db)
	DatabaseURL          string        // Optional: Postgres DSN; when set it replaces the SQLite file
	Host                 string        // Listen address; loopback only by default (default: 127.0.0.1)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	Timezone             string        // Zone used for log display and CSV export (default: America/Mexico_City)
	SeedSampleLogs       bool          // Seed sample access-log entries into an empty log (default: true)

	Limits httpapi.Limits
}

// LoadConfig reads the environment, after loading ./.env when one exists.
// Variables already set in the environment win over the file.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DatabaseFile:         getEnvOrDefault("HISTORIAL_DATABASE_FILE", "historial.db"),
		DatabaseURL:          os.Getenv("HISTORIAL_DATABASE_URL"),
		Host:                 getEnvOrDefault("HISTORIAL_HOST", "127.0.0.1"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		Timezone:             getEnvOrDefault("HISTORIAL_TIMEZONE", "America/Mexico_City"),
		SeedSampleLogs:       getEnvBoolOrDefault("SEED_SAMPLE_LOGS", true),
		Limits: httpapi.Limits{
			Auth:    httpx.ParseRateLimitFromEnv("AUTH", httpapi.DefaultLimits.Auth),
			Screens: httpx.ParseRateLimitFromEnv("SCREENS", httpapi.DefaultLimits.Screens),
			Public:  httpx.ParseRateLimitFromEnv("PUBLIC", httpapi.DefaultLimits.Public),
		},
	}
}

// Addr is the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Location resolves Timezone, falling back to UTC when the name is unknown.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "1h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
