package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/internal/historial/store"
	"github.com/stretchr/testify/require"
)

func TestRecordWithoutSessionUsesSystemIdentity(t *testing.T) {
	f := newFixture(t)

	e, err := f.audit.Record(context.Background(), nil, "Arranque", "Sistema")
	require.NoError(t, err)
	require.Equal(t, domain.SystemUserID, e.UserID)
	require.Equal(t, domain.SystemUserName, e.UserName)
	require.Equal(t, domain.SystemUserEmail, e.UserEmail)
	require.NotEmpty(t, e.ID)
	require.False(t, e.Timestamp.IsZero())
}

func TestRecordKeepsNewestHundred(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sess := &domain.Session{ID: "u1", Name: "ana", Email: "ana@benavides.com"}

	for i := range 105 {
		_, err := f.audit.Record(ctx, sess, fmt.Sprintf("accion-%d", i), "Pruebas")
		require.NoError(t, err)
	}

	entries, err := f.audit.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, service.MaxAuditEntries)
	require.Equal(t, "accion-104", entries[0].Action)
	require.Equal(t, "accion-5", entries[len(entries)-1].Action)
	for _, e := range entries {
		for i := range 5 {
			require.NotEqual(t, fmt.Sprintf("accion-%d", i), e.Action)
		}
	}
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.audit.Now = fixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	ana := &domain.Session{ID: "1", Name: "Ana López", Email: "ana@benavides.com"}
	luis := &domain.Session{ID: "2", Name: "Luis", Email: "luis@benavides.com"}
	for _, r := range []struct {
		s      *domain.Session
		action string
		module string
	}{
		{ana, domain.ActionLogin, domain.ModuleAuth},
		{luis, "Paciente creado: Juan", domain.ModulePatients},
		{ana, "Paciente eliminado: Juan", domain.ModulePatients},
	} {
		_, err := f.audit.Record(ctx, r.s, r.action, r.module)
		require.NoError(t, err)
	}

	t.Run("all", func(t *testing.T) {
		got, err := f.audit.List(ctx, service.AuditFilter{Module: service.AllModules})
		require.NoError(t, err)
		require.Len(t, got, 3)
	})

	t.Run("module", func(t *testing.T) {
		got, err := f.audit.List(ctx, service.AuditFilter{Module: domain.ModulePatients})
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "Paciente eliminado: Juan", got[0].Action)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		got, err := f.audit.List(ctx, service.AuditFilter{Search: "LÓPEZ"})
		require.NoError(t, err)
		require.Len(t, got, 2)

		got, err = f.audit.List(ctx, service.AuditFilter{Search: "luis@", Module: domain.ModulePatients})
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("modules in log order", func(t *testing.T) {
		mods, err := f.audit.Modules(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{domain.ModulePatients, domain.ModuleAuth}, mods)
	})
}

func TestUnreadableLogStartsEmpty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.KV().Put(ctx, store.KeyAccessLogs, "not json"))

	entries, err := f.audit.Entries(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)

	_, err = f.audit.Record(ctx, nil, "Arranque", "Sistema")
	require.NoError(t, err)
	entries, err = f.audit.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestExportCSV(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	t.Run("empty input is header only", func(t *testing.T) {
		out, err := service.ExportCSV(nil, loc)
		require.NoError(t, err)
		require.Equal(t, "Fecha,Hora,Usuario,Email,Acción,Módulo\n", string(out))
	})

	t.Run("rows in local time", func(t *testing.T) {
		entries := []domain.AuditEntry{{
			Timestamp: time.Date(2024, 1, 5, 18, 4, 9, 0, time.UTC),
			UserName:  "Ana",
			UserEmail: "ana@benavides.com",
			Action:    domain.ActionLogin,
			Module:    domain.ModuleAuth,
		}}
		out, err := service.ExportCSV(entries, loc)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(out)), "\n")
		require.Len(t, lines, 2)
		require.Equal(t, "05/01/2024,12:04:09,Ana,ana@benavides.com,Inicio de sesión,Autenticación", lines[1])
	})

	t.Run("commas are quoted", func(t *testing.T) {
		entries := []domain.AuditEntry{{
			Timestamp: time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC),
			UserName:  "Méndez, Carlos",
			UserEmail: "c@benavides.com",
			Action:    "Paciente creado: Pérez, Juan",
			Module:    domain.ModulePatients,
		}}
		out, err := service.ExportCSV(entries, time.UTC)
		require.NoError(t, err)
		require.Contains(t, string(out), `"Méndez, Carlos",c@benavides.com,"Paciente creado: Pérez, Juan",Pacientes`)
	})

	t.Run("filename", func(t *testing.T) {
		name := service.ExportFilename(time.Date(2024, 1, 6, 3, 0, 0, 0, time.UTC), loc)
		require.Equal(t, "logs-benavides-2024-01-05.csv", name)
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	seeded, err := f.audit.Seed(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	entries, err := f.audit.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	require.Equal(t, "Admin Principal", entries[0].UserName)
	require.True(t, entries[0].Timestamp.After(entries[4].Timestamp))

	seeded, err = f.audit.Seed(ctx)
	require.NoError(t, err)
	require.False(t, seeded)
}

func TestTrim(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	big := make([]domain.AuditEntry, 130)
	for i := range big {
		big[i] = domain.AuditEntry{ID: fmt.Sprint(i), Action: fmt.Sprint(i)}
	}
	require.NoError(t, store.Save(ctx, f.store.KV(), store.KeyAccessLogs, big))

	dropped, err := f.audit.Trim(ctx)
	require.NoError(t, err)
	require.Equal(t, 30, dropped)

	entries, err := f.audit.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 100)
	require.Equal(t, "0", entries[0].Action)
}
