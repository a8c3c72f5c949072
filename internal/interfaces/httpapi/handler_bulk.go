package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) DownloadBulkFile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DownloadBulkFile")
	defer span.End()

	fileName := strings.TrimSpace(r.PathValue("fileName"))

	data, err := h.bulkExportService.ExportFile(ctx, fileName)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	_, _ = w.Write(data)
}
