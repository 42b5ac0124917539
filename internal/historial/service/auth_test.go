package service_test

import (
	"context"
	"testing"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/internal/historial/store"
	"github.com/benavides/historial/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func countAction(entries []domain.AuditEntry, action string) int {
	n := 0
	for _, e := range entries {
		if e.Action == action {
			n++
		}
	}
	return n
}

func TestLoginAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	sess, err := f.auth.Login(ctx, "admin@benavides.com", "x", domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, "admin", sess.Name)
	require.Equal(t, domain.RoleAdmin, sess.Role)
	require.ElementsMatch(t, []domain.Permission{"users", "patients", "logs", "settings", "reports"}, sess.Permissions)
	require.NotEmpty(t, sess.ID)

	_, ok := f.guard.Check()
	require.True(t, ok)
	require.True(t, f.guard.Allow(&sess))

	entries, err := f.audit.Entries(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, countAction(entries, domain.ActionLogin))
	require.Equal(t, sess.ID, entries[0].UserID)
	require.Equal(t, domain.ModuleAuth, entries[0].Module)

	persisted, err := store.Load[domain.Session](ctx, f.store.KV(), store.KeySession)
	require.NoError(t, err)
	require.Equal(t, sess, persisted)
}

func TestRegisterKeepsName(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	sess, err := f.auth.Register(ctx, "carlos.mendez@benavides.com", "secreto123", "Dr. Carlos Méndez", domain.RolePhysician)
	require.NoError(t, err)
	require.Equal(t, "Dr. Carlos Méndez", sess.Name)
	require.ElementsMatch(t, domain.PermissionsFor(domain.RolePhysician), sess.Permissions)

	entries, err := f.audit.Entries(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ActionRegister, entries[0].Action)
	require.Equal(t, "Dr. Carlos Méndez", entries[0].UserName)
}

func TestLogoutAttributesToDepartingUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	sess, err := f.auth.Login(ctx, "maria@benavides.com", "x", domain.RolePharmacist)
	require.NoError(t, err)
	require.NoError(t, f.auth.Logout(ctx))

	entries, err := f.audit.Entries(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ActionLogout, entries[0].Action)
	require.Equal(t, sess.ID, entries[0].UserID)
	require.Equal(t, sess.Email, entries[0].UserEmail)

	_, ok := f.auth.Current()
	require.False(t, ok)
	_, ok = f.guard.Check()
	require.False(t, ok)
	require.False(t, f.guard.Allow(nil))

	_, err = f.store.KV().Get(ctx, store.KeySession)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogoutWhileAnonymousRecordsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.auth.Logout(ctx))
	entries, err := f.audit.Entries(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	sess, err := f.auth.Login(ctx, "paciente@correo.mx", "x", domain.RolePatient)
	require.NoError(t, err)

	restarted := service.NewSessionStore(f.store, slogx.Discard())
	_, _, err = restarted.Load(ctx)
	require.NoError(t, err)

	g := &service.Guard{Sessions: restarted}
	got, ok := g.Check()
	require.True(t, ok)
	require.Equal(t, sess, got)
}

func TestLoginReplacesSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.auth.Login(ctx, "a@benavides.com", "x", domain.RoleAdmin)
	require.NoError(t, err)
	second, err := f.auth.Login(ctx, "b@benavides.com", "x", domain.RolePatient)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	cur, ok := f.auth.Current()
	require.True(t, ok)
	require.Equal(t, second, cur)
}

func TestAuthorize(t *testing.T) {
	require.ErrorIs(t, service.Authorize(nil), service.ErrNoSession)

	sess := &domain.Session{Role: domain.RolePatient, Permissions: domain.PermissionsFor(domain.RolePatient)}
	require.NoError(t, service.Authorize(sess))
	require.NoError(t, service.Authorize(sess, domain.PermRecords, domain.PermAppointments))
	require.ErrorIs(t, service.Authorize(sess, domain.PermLogs), service.ErrForbidden)
}

func TestDashboardFor(t *testing.T) {
	paths := func(role domain.Role) []string {
		d := service.DashboardFor(domain.Session{Role: role, Permissions: domain.PermissionsFor(role)})
		out := make([]string, len(d.Screens))
		for i, s := range d.Screens {
			out[i] = s.Path
		}
		return out
	}

	require.Equal(t, []string{"/v1/users", "/v1/patients", "/v1/logs", "/v1/design-system"}, paths(domain.RoleAdmin))
	require.Equal(t, []string{"/v1/patients", "/v1/records", "/v1/appointments"}, paths(domain.RolePhysician))
	require.Equal(t, []string{"/v1/patients", "/v1/records"}, paths(domain.RolePharmacist))
	require.Equal(t, []string{"/v1/me/clinical", "/v1/appointments"}, paths(domain.RolePatient))
}
