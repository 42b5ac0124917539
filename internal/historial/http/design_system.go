package http

import (
	"net/http"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/pkg/httpx"
)

type DesignSystemHandler struct {
	Theme *service.ThemeService
}

func (h *DesignSystemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Theme.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cfg)
}

// HandleCSS renders the tokens as a :root stylesheet.
func (h *DesignSystemHandler) HandleCSS(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Theme.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cfg.CSS()))
}

// HandleUpdate
//
//	@Summary	Update design tokens
//	@Tags		Design system
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.DesignSystemPatch	true	"Tokens to change"
//	@Success	200		{object}	domain.DesignSystemConfig
//	@Failure	400		{object}	historialsdk.APIError
//	@Failure	403		{object}	historialsdk.APIError
//	@Router		/v1/design-system [patch].
func (h *DesignSystemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var p domain.DesignSystemPatch
	if err := httpx.DecodeJSON(r, &p); err != nil {
		writeBadBody(w, err)
		return
	}
	cfg, err := h.Theme.Update(r.Context(), sessionFrom(r), p)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cfg)
}

func (h *DesignSystemHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Theme.Reset(r.Context(), sessionFrom(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cfg)
}
