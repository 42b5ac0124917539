package http_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benavides/historial/internal/historial/domain"
	httpapi "github.com/benavides/historial/internal/historial/http"
	"github.com/benavides/historial/internal/historial/obs"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/internal/historial/store"
	"github.com/benavides/historial/internal/historial/store/drivers/sqlite"
	"github.com/benavides/historial/pkg/historialsdk"
	"github.com/benavides/historial/pkg/httpx"
	"github.com/benavides/historial/pkg/slogx"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*httptest.Server
	client *historialsdk.Client
	store  store.Store
	audit  *service.AuditLog
}

func newTestServer(t *testing.T, limits httpapi.Limits) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "historial.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	logger := slogx.Discard()
	sessions := service.NewSessionStore(st, logger)
	audit := &service.AuditLog{Store: st, Logger: logger}

	r := httpapi.NewRouter("test", st, logger)
	r.Limits = limits
	r.Metrics = obs.New()
	r.Sessions = sessions
	r.Guard = &service.Guard{Sessions: sessions}
	r.AuditLog = audit
	r.AuthService = &service.AuthService{Sessions: sessions, Audit: audit, Logger: logger}
	r.PatientService = &service.PatientService{Store: st, Audit: audit, Logger: logger}
	r.UserService = &service.UserService{Store: st, Audit: audit, Logger: logger}
	r.ClinicalService = &service.ClinicalService{Store: st, Audit: audit, Logger: logger, Location: time.UTC}
	r.AppointmentService = &service.AppointmentService{Store: st, Audit: audit, Logger: logger}
	r.ThemeService = &service.ThemeService{Store: st, Audit: audit, Logger: logger}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, client: historialsdk.NewClient(srv.URL), store: st, audit: audit}
}

func (s *testServer) login(t *testing.T, email string, role domain.Role) *historialsdk.Session {
	t.Helper()
	sess, err := s.client.Login(context.Background(), historialsdk.LoginRequest{
		Email:    email,
		Password: "secreto123",
		Role:     string(role),
	})
	require.NoError(t, err)
	return sess
}

func (s *testServer) doJSON(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestGuardedRoutesRequireSession(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, httpapi.DefaultLimits)

	_, err := s.client.Logs(context.Background(), "", "")
	require.True(t, historialsdk.IsLoginRequired(err), "got %v", err)

	var apiErr *historialsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, httpx.LoginPath, apiErr.Location)

	resp := s.doJSON(t, http.MethodGet, "/v1/dashboard", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPermissionDenialRedirectsToDashboard(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, httpapi.DefaultLimits)
	s.login(t, "paciente@benavides.mx", domain.RolePatient)

	_, err := s.client.Logs(context.Background(), "", "")
	require.True(t, historialsdk.IsForbidden(err), "got %v", err)

	var apiErr *historialsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, httpx.DashboardPath, apiErr.Location)

	// Session-only screens stay reachable.
	resp := s.doJSON(t, http.MethodGet, "/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginLogoutFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestServer(t, httpapi.DefaultLimits)

	sess := s.login(t, "admin@benavides.mx", domain.RoleAdmin)
	require.Equal(t, "admin", sess.Role)
	require.Equal(t, "admin", sess.Name)
	require.NotEmpty(t, sess.ID)
	require.Contains(t, sess.Permissions, string(domain.PermLogs))

	state, err := s.client.Session(ctx)
	require.NoError(t, err)
	require.True(t, state.Authenticated)
	require.Equal(t, sess.ID, state.Session.ID)

	logs, err := s.client.Logs(ctx, "", "")
	require.NoError(t, err)
	require.Equal(t, domain.ActionLogsViewed, logs.Entries[0].Action)
	require.Equal(t, domain.ActionLogin, logs.Entries[1].Action)
	require.Equal(t, "admin@benavides.mx", logs.Entries[1].UserEmail)
	require.Equal(t, len(logs.Entries), logs.Total)

	require.NoError(t, s.client.Logout(ctx))

	state, err = s.client.Session(ctx)
	require.NoError(t, err)
	require.False(t, state.Authenticated)
	require.Nil(t, state.Session)

	entries, err := s.audit.Entries(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ActionLogout, entries[0].Action)
	require.Equal(t, sess.ID, entries[0].UserID)

	// Logging out again is a no-op.
	require.NoError(t, s.client.Logout(ctx))
	after, err := s.audit.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(entries))
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestServer(t, httpapi.DefaultLimits)

	_, err := s.client.Register(ctx, historialsdk.RegisterRequest{
		Name:            "Luis",
		Email:           "luis@benavides.mx",
		Password:        "secreto123",
		ConfirmPassword: "otro123456",
		Role:            "medico",
	})
	var apiErr *historialsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Las contraseñas no coinciden", apiErr.Description)

	state, err := s.client.Session(ctx)
	require.NoError(t, err)
	require.False(t, state.Authenticated)

	sess, err := s.client.Register(ctx, historialsdk.RegisterRequest{
		Name:            "Luis",
		Email:           "luis@benavides.mx",
		Password:        "secreto123",
		ConfirmPassword: "secreto123",
		Role:            "medico",
	})
	require.NoError(t, err)
	require.Equal(t, "Luis", sess.Name)
	require.Equal(t, "medico", sess.Role)
}

func TestLogsFilterAndExport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestServer(t, httpapi.DefaultLimits)
	s.login(t, "admin@benavides.mx", domain.RoleAdmin)

	logs, err := s.client.Logs(ctx, "INICIO", "")
	require.NoError(t, err)
	require.Len(t, logs.Entries, 1)
	require.Equal(t, domain.ActionLogin, logs.Entries[0].Action)

	logs, err = s.client.Logs(ctx, "", domain.ModuleAuth)
	require.NoError(t, err)
	for _, e := range logs.Entries {
		require.Equal(t, domain.ModuleAuth, e.Module)
	}

	modules, err := s.client.LogModules(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{domain.ModuleAuth, domain.ModuleLogs}, modules)

	body, err := s.client.ExportLogs(ctx, "", domain.ModuleAuth)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"Fecha", "Hora", "Usuario", "Email", "Acción", "Módulo"}, rows[0])
	require.Len(t, rows, 2)
	require.Equal(t, "admin@benavides.mx", rows[1][3])

	entries, err := s.audit.Entries(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ActionLogsExport, entries[0].Action)

	resp := s.doJSON(t, http.MethodGet, "/v1/logs/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "logs-benavides-")
}

func TestLoginRateLimit(t *testing.T) {
	t.Parallel()
	limits := httpapi.DefaultLimits
	limits.Auth = httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Hour, Burst: 1}
	s := newTestServer(t, limits)

	s.login(t, "admin@benavides.mx", domain.RoleAdmin)

	_, err := s.client.Login(context.Background(), historialsdk.LoginRequest{
		Email: "admin@benavides.mx", Password: "secreto123", Role: "admin",
	})
	var apiErr *historialsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.Equal(t, historialsdk.ErrorCodeRateLimited, apiErr.Code)
}

func TestPatientsCRUD(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, httpapi.DefaultLimits)
	s.login(t, "medico@benavides.mx", domain.RolePhysician)

	resp := s.doJSON(t, http.MethodPost, "/v1/patients", domain.PatientInput{Name: "Sin CURP"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.doJSON(t, http.MethodPost, "/v1/patients", domain.PatientInput{
		Name:      "María López",
		CURP:      "lopm800101mdfxxx01",
		BirthDate: "1980-01-01",
		Email:     "maria@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created domain.Patient
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, "LOPM800101MDFXXX01", created.CURP)
	require.Equal(t, domain.PatientActive, created.Status)

	resp = s.doJSON(t, http.MethodGet, "/v1/patients?q=maría", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []domain.Patient
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed, 1)

	resp = s.doJSON(t, http.MethodPut, "/v1/patients/"+created.ID, domain.PatientInput{
		Name:      "María López",
		CURP:      created.CURP,
		BirthDate: "1980-01-01",
		Status:    domain.PatientInactive,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.doJSON(t, http.MethodDelete, "/v1/patients/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.doJSON(t, http.MethodDelete, "/v1/patients/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestServer(t, httpapi.DefaultLimits)

	live, err := s.client.Liveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "test", live.Version)

	ready, err := s.client.Readiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)

	s.doJSON(t, http.MethodGet, "/v1/dashboard", nil)
	resp := s.doJSON(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	require.Contains(t, buf.String(), `path="GET /v1/dashboard"`)
}
