package httpapi

import (
	"net/http"

	"github.com/sportsworldcentral/swc-api/internal/domain/performance"
)

func (h *Handler) ListPerformances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPerformances")
	defer span.End()

	page, err := parseListQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateQuery(ctx, page); err != nil {
		writeError(ctx, w, err)
		return
	}

	scored, err := h.performanceService.ListPerformances(ctx, performance.Filter{
		MinimumLastChanged: page.MinimumLastChanged,
		Skip:               page.Skip,
		Limit:              page.Limit,
	}, parseScoringTypeParam(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "list performances failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPerformanceDTOs(scored))
}
