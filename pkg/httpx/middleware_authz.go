package httpx

import (
	"net/http"
	"strings"
)

// DashboardPath is where clients are pointed when the session lacks access to
// a screen.
const DashboardPath = "/v1/dashboard"

// RequireAnyPermission the caller must hold at least one of the provided
// permissions. Must run after RequireSession.
func RequireAnyPermission(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if ok {
				for _, perm := range required {
					if p.Has(perm) {
						next.ServeHTTP(w, r)
						return
					}
				}
			}
			writeForbidden(w, "requires one of: "+strings.Join(required, ", "))
		})
	}
}

func writeForbidden(w http.ResponseWriter, desc string) {
	w.Header().Set("Location", DashboardPath)
	WriteError(w, http.StatusForbidden, ErrorCodeInsufficientPermission, desc)
}
