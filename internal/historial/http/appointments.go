package http

import (
	"net/http"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/pkg/httpx"
)

type AppointmentsHandler struct {
	Appointments *service.AppointmentService
}

type statusRequest struct {
	Status domain.AppointmentStatus `json:"status"`
}

// HandleList
//
//	@Summary	List appointments
//	@Tags		Appointments
//	@Produce	json
//	@Param		status	query	string	false	"scheduled, completed, cancelled, no-show or all"
//	@Param		q		query	string	false	"Search by patient, reason or doctor"
//	@Success	200		{array}	domain.Appointment
//	@Router		/v1/appointments [get].
func (h *AppointmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.Appointments.List(r.Context(), sessionFrom(r), service.AppointmentFilter{
		Status: q.Get("status"),
		Search: q.Get("q"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *AppointmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.AppointmentInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadBody(w, err)
		return
	}
	appt, err := h.Appointments.Create(r.Context(), sessionFrom(r), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, appt)
}

func (h *AppointmentsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadBody(w, err)
		return
	}
	appt, err := h.Appointments.UpdateStatus(r.Context(), sessionFrom(r), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, appt)
}
