package service_test

import (
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/internal/historial/store/drivers/sqlite"
	"github.com/benavides/historial/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "historial.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

type fixture struct {
	store    *sqlite.Store
	sessions *service.SessionStore
	audit    *service.AuditLog
	auth     *service.AuthService
	guard    *service.Guard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := newStore(t)
	logger := slogx.Discard()

	sessions := service.NewSessionStore(st, logger)
	audit := &service.AuditLog{Store: st, Logger: logger}
	return &fixture{
		store:    st,
		sessions: sessions,
		audit:    audit,
		auth:     &service.AuthService{Sessions: sessions, Audit: audit, Logger: logger},
		guard:    &service.Guard{Sessions: sessions},
	}
}

// fixedClock returns a clock that advances one second per call.
func fixedClock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		n++
		return start.Add(time.Duration(n) * time.Second)
	}
}
