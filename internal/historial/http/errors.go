package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/internal/historial/store"
	"github.com/benavides/historial/pkg/httpx"
	"github.com/benavides/historial/pkg/slogx"
)

// writeServiceError maps service and store errors onto HTTP responses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		msg := strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, msg)
	case errors.Is(err, service.ErrNoSession):
		w.Header().Set("Location", httpx.LoginPath)
		httpx.WriteError(w, http.StatusUnauthorized, httpx.ErrorCodeLoginRequired, "no active session")
	case errors.Is(err, service.ErrForbidden):
		w.Header().Set("Location", httpx.DashboardPath)
		httpx.WriteError(w, http.StatusForbidden, httpx.ErrorCodeInsufficientPermission, err.Error())
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.ErrorCodeNotFound, err.Error())
	case errors.Is(err, store.ErrAlreadyExists):
		httpx.WriteError(w, http.StatusConflict, httpx.ErrorCodeConflict, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrorCodeServerError, "internal error")
	}
}

func writeBadBody(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, "malformed JSON body: "+err.Error())
}

// sessionFrom rebuilds the session snapshot RequireSession attached.
func sessionFrom(r *http.Request) *domain.Session {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		return nil
	}
	perms := make([]domain.Permission, len(p.Permissions))
	for i, s := range p.Permissions {
		perms[i] = domain.Permission(s)
	}
	return &domain.Session{
		ID:          p.UserID,
		Email:       p.Email,
		Name:        p.Name,
		Role:        domain.Role(p.Role),
		Permissions: perms,
	}
}
