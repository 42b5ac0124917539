package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/benavides/historial/internal/historial/domain"
	"github.com/benavides/historial/internal/historial/service"
	"github.com/benavides/historial/pkg/historialsdk"
	"github.com/benavides/historial/pkg/httpx"
)

type LogsHandler struct {
	Audit    *service.AuditLog
	Location *time.Location
}

func auditFilter(r *http.Request) service.AuditFilter {
	q := r.URL.Query()
	return service.AuditFilter{Search: q.Get("q"), Module: q.Get("module")}
}

// HandleList returns the filtered access log and records the visit.
//
//	@Summary		Access log
//	@Description	Newest first. module=all disables the module filter.
//	@Tags			Logs
//	@Produce		json
//	@Param			q		query		string	false	"Case-insensitive search"
//	@Param			module	query		string	false	"Module tag or all"
//	@Success		200		{object}	historialsdk.LogsResponse
//	@Failure		401		{object}	historialsdk.APIError
//	@Failure		403		{object}	historialsdk.APIError
//	@Router			/v1/logs [get].
func (h *LogsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, err := h.Audit.Record(ctx, sessionFrom(r), domain.ActionLogsViewed, domain.ModuleLogs); err != nil {
		writeServiceError(w, r, err)
		return
	}

	entries, err := h.Audit.List(ctx, auditFilter(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := historialsdk.LogsResponse{Entries: make([]historialsdk.AuditEntry, len(entries)), Total: len(entries)}
	for i, e := range entries {
		resp.Entries[i] = historialsdk.AuditEntry(e)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleModules returns the distinct module tags.
func (h *LogsHandler) HandleModules(w http.ResponseWriter, r *http.Request) {
	modules, err := h.Audit.Modules(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, historialsdk.ModulesResponse{Modules: modules})
}

// HandleExport streams the filtered log as a CSV attachment.
//
//	@Summary	Export access log
//	@Tags		Logs
//	@Produce	text/csv
//	@Success	200	{file}	file
//	@Router		/v1/logs/export [get].
func (h *LogsHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.Audit.List(ctx, auditFilter(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	body, err := service.ExportCSV(entries, h.Location)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if _, err := h.Audit.Record(ctx, sessionFrom(r), domain.ActionLogsExport, domain.ModuleLogs); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+service.ExportFilename(time.Now(), h.Location)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
