package http

import (
	"net/http"
	"time"

	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/internal/historial/store"
	"github.com/benavides/historial/pkg/historialsdk"
	"github.com/benavides/historial/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary	Liveness probe
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	historialsdk.HealthResponse
//	@Router		/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, historialsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the database connection and reports whether a session is active.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	historialsdk.HealthResponse
//	@Failure		503	{object}	historialsdk.HealthResponse
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, sessions *service.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &historialsdk.HealthChecks{Database: "ok", Session: "none"}
		status, code := "ok", http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}
		if sessions != nil {
			if _, ok := sessions.Current(); ok {
				checks.Session = "active"
			}
		}

		httpx.WriteJSON(w, code, historialsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
