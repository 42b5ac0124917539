package http

import (
	"net/http"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/pkg/httpx"
)

type ClinicalHandler struct {
	Clinical *service.ClinicalService
}

// HandleListRecords
//
//	@Summary	List clinical records
//	@Tags		Clinical
//	@Produce	json
//	@Param		patientId	query	string	false	"Only this patient"
//	@Param		q			query	string	false	"Search by name, CURP or diagnosis"
//	@Success	200			{array}	domain.ClinicalRecord
//	@Router		/v1/records [get].
func (h *ClinicalHandler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.Clinical.Records(r.Context(), sessionFrom(r), q.Get("patientId"), q.Get("q"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *ClinicalHandler) HandleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var in domain.ClinicalRecordInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadBody(w, err)
		return
	}
	rec, err := h.Clinical.CreateRecord(r.Context(), sessionFrom(r), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, rec)
}

func (h *ClinicalHandler) HandleListPrescriptions(w http.ResponseWriter, r *http.Request) {
	items, err := h.Clinical.Prescriptions(r.Context(), sessionFrom(r), r.URL.Query().Get("patientId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *ClinicalHandler) HandleCreatePrescription(w http.ResponseWriter, r *http.Request) {
	var in domain.PrescriptionInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeBadBody(w, err)
		return
	}
	rx, err := h.Clinical.CreatePrescription(r.Context(), sessionFrom(r), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, rx)
}

// HandleDownload returns a prescription as a plain-text attachment.
func (h *ClinicalHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	rx, doc, err := h.Clinical.DownloadPrescription(r.Context(), sessionFrom(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="prescripcion-`+rx.ID+`.txt"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// HandleOwnHistory
//
//	@Summary	My clinical history
//	@Tags		Clinical
//	@Produce	json
//	@Success	200	{object}	service.OwnHistory
//	@Router		/v1/me/clinical [get].
func (h *ClinicalHandler) HandleOwnHistory(w http.ResponseWriter, r *http.Request) {
	out, err := h.Clinical.OwnHistory(r.Context(), sessionFrom(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
