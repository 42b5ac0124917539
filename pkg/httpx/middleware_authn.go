package httpx

import (
	"context"
	"net/http"

	"github.com/benavides/historial/pkg/slogx"
)

// LoginPath is where clients are pointed when a guarded route has no session.
const LoginPath = "/v1/auth/login"

// SessionSource reports the current principal, if any.
type SessionSource func(ctx context.Context) (Principal, bool)

// RequireSession lets a request through only while a session is present.
// Otherwise it answers 401 with a Location hint to the login entry point;
// that is a state transition for the client, not a server error.
func RequireSession(src SessionSource) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			p, ok := src(ctx)
			if !ok {
				w.Header().Set("Location", LoginPath)
				WriteError(w, http.StatusUnauthorized, ErrorCodeLoginRequired, "no active session")
				return
			}

			ctx = ContextWithPrincipal(ctx, p)
			ctx = slogx.WithSession(ctx, p.UserID, p.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
