package http

import (
	"net/http"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/pkg/httpx"
)

type PatientsHandler struct {
	Patients *service.PatientService
}

// HandleList
//
//	@Summary	List patients
//	@Tags		Patients
//	@Produce	json
//	@Param		q	query		string	false	"Search by name, CURP or email"
//	@Success	200	{array}		domain.Patient
//	@Failure	403	{object}	historialsdk.APIError
//	@Router		/v1/patients [get].
func (h *PatientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Patients.List(r.Context(), sessionFrom(r), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

// HandleCreate
//
//	@Summary	Register a patient
//	@Tags		Patients
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.PatientInput	true	"Patient"
//	@Success	201		{object}	domain.Patient
//	@Failure	400		{object}	historialsdk.APIError
//	@Router		/v1/patients [post].
func (h *PatientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.PatientInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadBody(w, err)
		return
	}
	p, err := h.Patients.Create(r.Context(), sessionFrom(r), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *PatientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in domain.PatientInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadBody(w, err)
		return
	}
	p, err := h.Patients.Update(r.Context(), sessionFrom(r), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PatientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Patients.Delete(r.Context(), sessionFrom(r), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
