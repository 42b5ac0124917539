package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benavides/historial/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func sessionSource(p *httpx.Principal) httpx.SessionSource {
	return func(context.Context) (httpx.Principal, bool) {
		if p == nil {
			return httpx.Principal{}, false
		}
		return *p, true
	}
}

func TestRequireSession(t *testing.T) {
	t.Run("rejects without session", func(t *testing.T) {
		h := httpx.RequireSession(sessionSource(nil))(okHandler())
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, httpx.LoginPath, rec.Header().Get("Location"))
		require.Contains(t, rec.Body.String(), httpx.ErrorCodeLoginRequired)
	})

	t.Run("attaches principal", func(t *testing.T) {
		var got httpx.Principal
		h := httpx.RequireSession(sessionSource(&httpx.Principal{UserID: "u-1", Role: "admin"}))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = httpx.PrincipalFromContext(r.Context())
			}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, "u-1", got.UserID)
	})
}

func TestRequireAnyPermission(t *testing.T) {
	physician := &httpx.Principal{UserID: "u-2", Role: "medico", Permissions: []string{"patients", "records"}}

	t.Run("allows matching permission", func(t *testing.T) {
		h := httpx.Chain(okHandler(),
			httpx.RequireSession(sessionSource(physician)),
			httpx.RequireAnyPermission("logs", "records"),
		)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbids missing permission", func(t *testing.T) {
		h := httpx.Chain(okHandler(),
			httpx.RequireSession(sessionSource(physician)),
			httpx.RequireAnyPermission("logs"),
		)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, httpx.DashboardPath, rec.Header().Get("Location"))
	})
}
