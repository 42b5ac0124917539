package app

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	httpapi "github.com/benavides/historial/internal/historial/http"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	return Config{
		DatabaseFile:         filepath.Join(t.TempDir(), "historial.db"),
		Host:                 "127.0.0.1",
		Port:                 0,
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
		Timezone:             "America/Mexico_City",
		SeedSampleLogs:       true,
		Limits:               httpapi.DefaultLimits,
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)

	first, err := New(cfg)
	require.NoError(t, err)
	srv := httptest.NewServer(first.Handler())

	body := `{"email":"ana@benavides.mx","password":"secreto1","role":"admin"}`
	resp, err := srv.Client().Post(srv.URL+"/v1/auth/login", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)
	srv.Close()
	require.NoError(t, first.db.Close())

	second, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.db.Close() })

	rec := httptest.NewRecorder()
	second.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/v1/session", nil))
	require.Equal(t, 200, rec.Code)

	var out struct {
		Authenticated bool `json:"authenticated"`
		Session       struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.True(t, out.Authenticated)
	require.Equal(t, "ana@benavides.mx", out.Session.Email)
	require.Equal(t, "admin", out.Session.Role)
}

func TestSampleLogsSeededOnce(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg)
	require.NoError(t, err)
	entries, err := a.auditLog.Entries(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	seeded := len(entries)
	require.NoError(t, a.db.Close())

	b, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.db.Close() })
	entries, err = b.auditLog.Entries(t.Context())
	require.NoError(t, err)
	require.Len(t, entries, seeded)
}

func TestMetricsEndpoint(t *testing.T) {
	a, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.db.Close() })

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), "build_info{")
}
