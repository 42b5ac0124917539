package http

import (
	"net/http"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/pkg/historialsdk"
	"github.com/benavides/historial/pkg/httpx"
	"github.com/benavides/historial/pkg/slogx"
)

type AuthHandler struct {
	Auth *service.AuthService
}

func toSDKSession(s domain.Session) historialsdk.Session {
	return historialsdk.Session{
		ID:          s.ID,
		Email:       s.Email,
		Name:        s.Name,
		Role:        string(s.Role),
		RoleLabel:   s.Role.Label(),
		Permissions: domain.PermissionStrings(s.Permissions),
	}
}

// HandleLogin starts a session. The password is not verified.
//
//	@Summary		Log in
//	@Description	Replaces the process session with one for the given email and role.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		historialsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	historialsdk.Session
//	@Failure		400		{object}	historialsdk.APIError
//	@Failure		429		{object}	historialsdk.APIError
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w, err)
		return
	}
	role, err := req.Validate()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	sess, err := h.Auth.Login(r.Context(), req.Email, req.Password, role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKSession(sess))
}

// HandleRegister starts a session with a chosen display name.
//
//	@Summary	Register
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		historialsdk.RegisterRequest	true	"Registration form"
//	@Success	201		{object}	historialsdk.Session
//	@Failure	400		{object}	historialsdk.APIError
//	@Router		/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w, err)
		return
	}
	role, err := req.Validate()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	sess, err := h.Auth.Register(r.Context(), req.Email, req.Password, req.Name, role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSDKSession(sess))
}

// HandleLogout ends the session. Without a session it still answers 204.
//
//	@Summary	Log out
//	@Tags		Auth
//	@Success	204
//	@Router		/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context()); err != nil {
		slogx.FromContext(r.Context()).Error("logout failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrorCodeServerError, "logout failed")
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleSession reports whether a session is active.
//
//	@Summary	Current session
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	historialsdk.SessionResponse
//	@Router		/v1/session [get].
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.Auth.Current()
	resp := historialsdk.SessionResponse{Authenticated: ok}
	if ok {
		s := toSDKSession(sess)
		resp.Session = &s
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
