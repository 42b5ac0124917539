package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/obs"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/internal/historial/store"
	"github.com/benavides/historial/pkg/httpx"
	"github.com/benavides/historial/pkg/slogx"

	_ "github.com/benavides/historial/api/historial" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Limits groups the rate limits applied per route class.
type Limits struct {
	Auth    httpx.RateLimitConfig
	Screens httpx.RateLimitConfig
	Public  httpx.RateLimitConfig
}

// DefaultLimits are used when the caller does not override them.
var DefaultLimits = Limits{
	Auth:    httpx.StrictLimit,
	Screens: httpx.LenientLimit,
	Public:  httpx.PublicLimit,
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	Limits   Limits
	Location *time.Location
	Metrics  *obs.Metrics

	Sessions           *service.SessionStore
	Guard              *service.Guard
	AuthService        *service.AuthService
	AuditLog           *service.AuditLog
	PatientService     *service.PatientService
	UserService        *service.UserService
	ClinicalService    *service.ClinicalService
	AppointmentService *service.AppointmentService
	ThemeService       *service.ThemeService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Limits:       DefaultLimits,
		Location:     time.UTC,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}
	return r
}

func (r *Router) ApplyRoutes() {
	if r.Metrics != nil {
		r.middlewares = append(r.middlewares, r.Metrics.Instrument)
	}

	r.registerAuth()
	r.registerDashboard()
	r.registerLogs()
	r.registerPatients()
	r.registerUsers()
	r.registerClinical()
	r.registerAppointments()
	r.registerDesignSystem()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP applies the global middleware chain.
//
//	@title			Historial Clínico API
//	@version		0.1.0
//	@description	Loopback API of the clinical-records desk: session, access log and clinical screens.
//	@description	The process holds a single session shared by every caller.
//
//	@contact.name	Farmacias Benavides
//
//	@host			127.0.0.1:8080
//	@BasePath		/
//	@schemes		http
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) sessionSource(ctx context.Context) (httpx.Principal, bool) {
	sess, ok := r.Guard.Check()
	if !ok {
		return httpx.Principal{}, false
	}
	return httpx.Principal{
		UserID:      sess.ID,
		Email:       sess.Email,
		Name:        sess.Name,
		Role:        string(sess.Role),
		Permissions: domain.PermissionStrings(sess.Permissions),
	}, true
}

// guarded wraps h with the session guard, an optional permission check and
// the per-user screen limit.
func (r *Router) guarded(h http.HandlerFunc, perms ...domain.Permission) http.Handler {
	mws := []httpx.Middleware{httpx.RequireSession(r.sessionSource)}
	if len(perms) > 0 {
		mws = append(mws, httpx.RequireAnyPermission(domain.PermissionStrings(perms)...))
	}
	mws = append(mws, httpx.RateLimitByUser(r.Limits.Screens))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{Auth: r.AuthService}

	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin), httpx.RateLimitByIP(r.Limits.Auth)))
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister), httpx.RateLimitByIP(r.Limits.Auth)))
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout), httpx.RateLimitByIP(r.Limits.Screens)))
	r.Mux.Handle("GET /v1/session",
		httpx.Chain(http.HandlerFunc(h.HandleSession), httpx.RateLimitByIP(r.Limits.Public)))
}

func (r *Router) registerDashboard() {
	r.Mux.Handle("GET /v1/dashboard", r.guarded(handleDashboard))
}

func (r *Router) registerLogs() {
	h := &LogsHandler{Audit: r.AuditLog, Location: r.Location}

	r.Mux.Handle("GET /v1/logs", r.guarded(h.HandleList, domain.PermLogs))
	r.Mux.Handle("GET /v1/logs/modules", r.guarded(h.HandleModules, domain.PermLogs))
	r.Mux.Handle("GET /v1/logs/export", r.guarded(h.HandleExport, domain.PermLogs))
}

func (r *Router) registerPatients() {
	h := &PatientsHandler{Patients: r.PatientService}

	r.Mux.Handle("GET /v1/patients", r.guarded(h.HandleList, domain.PermPatients))
	r.Mux.Handle("POST /v1/patients", r.guarded(h.HandleCreate, domain.PermPatients))
	r.Mux.Handle("PUT /v1/patients/{id}", r.guarded(h.HandleUpdate, domain.PermPatients))
	r.Mux.Handle("DELETE /v1/patients/{id}", r.guarded(h.HandleDelete, domain.PermPatients))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Users: r.UserService}

	r.Mux.Handle("GET /v1/users", r.guarded(h.HandleList, domain.PermUsers))
	r.Mux.Handle("POST /v1/users", r.guarded(h.HandleCreate, domain.PermUsers))
	r.Mux.Handle("PUT /v1/users/{id}", r.guarded(h.HandleUpdate, domain.PermUsers))
	r.Mux.Handle("DELETE /v1/users/{id}", r.guarded(h.HandleDelete, domain.PermUsers))
}

func (r *Router) registerClinical() {
	h := &ClinicalHandler{Clinical: r.ClinicalService}

	r.Mux.Handle("GET /v1/records", r.guarded(h.HandleListRecords, domain.PermRecords, domain.PermPrescriptions))
	r.Mux.Handle("POST /v1/records", r.guarded(h.HandleCreateRecord, domain.PermRecords))
	r.Mux.Handle("GET /v1/prescriptions", r.guarded(h.HandleListPrescriptions, domain.PermRecords, domain.PermPrescriptions))
	r.Mux.Handle("POST /v1/prescriptions", r.guarded(h.HandleCreatePrescription, domain.PermPrescriptions))
	r.Mux.Handle("GET /v1/prescriptions/{id}/download", r.guarded(h.HandleDownload, domain.PermOwnRecords, domain.PermPrescriptions))
	r.Mux.Handle("GET /v1/me/clinical", r.guarded(h.HandleOwnHistory, domain.PermOwnRecords))
}

func (r *Router) registerAppointments() {
	h := &AppointmentsHandler{Appointments: r.AppointmentService}

	r.Mux.Handle("GET /v1/appointments", r.guarded(h.HandleList, domain.PermAppointments, domain.PermRecords))
	r.Mux.Handle("POST /v1/appointments", r.guarded(h.HandleCreate, domain.PermAppointments, domain.PermRecords))
	r.Mux.Handle("PATCH /v1/appointments/{id}/status", r.guarded(h.HandleUpdateStatus, domain.PermAppointments, domain.PermRecords))
}

func (r *Router) registerDesignSystem() {
	h := &DesignSystemHandler{Theme: r.ThemeService}

	r.Mux.Handle("GET /v1/design-system", r.guarded(h.HandleGet))
	r.Mux.Handle("GET /v1/design-system/css", r.guarded(h.HandleCSS))
	r.Mux.Handle("PATCH /v1/design-system", r.guarded(h.HandleUpdate, domain.PermSettings))
	r.Mux.Handle("POST /v1/design-system/reset", r.guarded(h.HandleReset, domain.PermSettings))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), httpx.RateLimitByIP(r.Limits.Public)))
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Sessions), httpx.RateLimitByIP(r.Limits.Public)))

	if r.Metrics != nil {
		r.Mux.Handle("GET /metrics", httpx.Chain(r.Metrics.Handler(), httpx.RateLimitByIP(r.Limits.Public)))
	}
}
