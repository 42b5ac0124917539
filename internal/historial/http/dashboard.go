package http

import (
	"net/http"

	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/pkg/httpx"
)

// handleDashboard lists the screens the session may open.
//
//	@Summary	Dashboard
//	@Tags		Dashboard
//	@Produce	json
//	@Success	200	{object}	service.Dashboard
//	@Failure	401	{object}	historialsdk.APIError
//	@Router		/v1/dashboard [get].
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, service.DashboardFor(*sessionFrom(r)))
}
