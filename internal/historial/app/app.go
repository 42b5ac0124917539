package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/benavides/historial/internal/historial/http"
	"github.com/benavides/historial/internal/historial/obs"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/internal/historial/store"
	"github.com/benavides/historial/internal/historial/store/drivers/postgres"
	"github.com/benavides/historial/internal/historial/store/drivers/sqlite"
	"github.com/benavides/historial/pkg/slogx"
)

// BuildVersion and BuildCommit are overridden at link time.
var (
	BuildVersion = "v0.1.0"
	BuildCommit  = "dev"
)

// Application owns the store, the single process-wide session and the HTTP
// server.
type Application struct {
	cfg      Config
	logger   *slog.Logger
	location *time.Location

	db      store.Store
	metrics *obs.Metrics

	sessions            *service.SessionStore
	auditLog            *service.AuditLog
	authService         *service.AuthService
	patientService      *service.PatientService
	userService         *service.UserService
	clinicalService     *service.ClinicalService
	appointmentService  *service.AppointmentService
	themeService        *service.ThemeService
	housekeepingService *service.HousekeepingService
	unsubscribe         func()

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialised and the
// persisted session restored.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "historial",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: obs.New(),
	}
	app.metrics.SetBuildInfo(BuildVersion, BuildCommit)

	loc, err := cfg.Location()
	if err != nil {
		app.logger.Warn("falling back to UTC", "error", err)
	}
	app.location = loc

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	ctx := context.Background()
	if err := app.restoreSession(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if cfg.SeedSampleLogs {
		if seeded, err := app.auditLog.Seed(ctx); err != nil {
			app.logger.Warn("failed to seed sample access log", "error", err)
		} else if seeded {
			app.logger.Info("seeded sample access log")
		}
	}

	app.initHTTP()
	return app, nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("historial starting", "addr", app.cfg.Addr(), "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops housekeeping and closes the
// store. The persisted session survives for the next start.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down historial...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()
	if app.unsubscribe != nil {
		app.unsubscribe()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("historial stopped")
	return nil
}

func (app *Application) openStore() (store.Store, string, error) {
	if app.cfg.DatabaseURL != "" {
		db, err := postgres.NewStore(app.cfg.DatabaseURL)
		return db, "postgres", err
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	return db, "sqlite", err
}

func (app *Application) initDatabase() error {
	db, driver, err := app.openStore()
	if err != nil {
		return fmt.Errorf("failed to initialize %s database: %w", driver, err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", driver)
	return nil
}

func (app *Application) initServices() {
	app.sessions = service.NewSessionStore(app.db, app.logger)
	app.unsubscribe = app.sessions.Subscribe(app.metrics.ObserveSession)

	app.auditLog = &service.AuditLog{
		Store:    app.db,
		Logger:   app.logger,
		OnRecord: app.metrics.ObserveAudit,
	}
	app.authService = &service.AuthService{
		Sessions: app.sessions,
		Audit:    app.auditLog,
		Logger:   app.logger,
	}
	app.patientService = &service.PatientService{Store: app.db, Audit: app.auditLog, Logger: app.logger}
	app.userService = &service.UserService{Store: app.db, Audit: app.auditLog, Logger: app.logger}
	app.clinicalService = &service.ClinicalService{
		Store:    app.db,
		Audit:    app.auditLog,
		Logger:   app.logger,
		Location: app.location,
	}
	app.appointmentService = &service.AppointmentService{Store: app.db, Audit: app.auditLog, Logger: app.logger}
	app.themeService = &service.ThemeService{Store: app.db, Audit: app.auditLog, Logger: app.logger}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.auditLog,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) restoreSession(ctx context.Context) error {
	sess, ok, err := app.sessions.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if ok {
		app.logger.Info("session restored", "user_id", sess.ID, "role", string(sess.Role))
	}
	app.metrics.ObserveSession(sess, ok)
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.Limits = app.cfg.Limits
	router.Location = app.location
	router.Metrics = app.metrics
	router.Sessions = app.sessions
	router.Guard = &service.Guard{Sessions: app.sessions}
	router.AuthService = app.authService
	router.AuditLog = app.auditLog
	router.PatientService = app.patientService
	router.UserService = app.userService
	router.ClinicalService = app.clinicalService
	router.AppointmentService = app.appointmentService
	router.ThemeService = app.themeService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              app.cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
