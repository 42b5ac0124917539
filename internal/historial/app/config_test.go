package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"HISTORIAL_DATABASE_FILE", "HISTORIAL_DATABASE_URL", "HISTORIAL_HOST", "PORT", "ENV", "LOG_LEVEL", "LOG_FORMAT",
		"SHUTDOWN_GRACE_PERIOD", "HOUSEKEEPING_INTERVAL", "HISTORIAL_TIMEZONE", "SEED_SAMPLE_LOGS",
		"RATELIMIT_AUTH_REQUESTS",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "historial.db", cfg.DatabaseFile)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, "127.0.0.1:8080", cfg.Addr())
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.True(t, cfg.SeedSampleLogs)
	require.Equal(t, 5, cfg.Limits.Auth.RequestsPerWindow)

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, "America/Mexico_City", loc.String())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HISTORIAL_HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "2s")
	t.Setenv("SEED_SAMPLE_LOGS", "false")
	t.Setenv("RATELIMIT_AUTH_REQUESTS", "50")

	cfg := LoadConfig()
	require.Equal(t, "0.0.0.0:9090", cfg.Addr())
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
	require.Equal(t, 2*time.Second, cfg.ShutdownGracePeriod)
	require.False(t, cfg.SeedSampleLogs)
	require.Equal(t, 50, cfg.Limits.Auth.RequestsPerWindow)
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("SEED_SAMPLE_LOGS", "maybe")
	t.Setenv("HOUSEKEEPING_INTERVAL", "soon")

	cfg := LoadConfig()
	require.Equal(t, 8080, cfg.Port)
	require.True(t, cfg.SeedSampleLogs)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestUnknownTimezoneFallsBackToUTC(t *testing.T) {
	cfg := Config{Timezone: "Mars/Olympus_Mons"}
	loc, err := cfg.Location()
	require.Error(t, err)
	require.Equal(t, time.UTC, loc)
}
