package httpapi

import (
	"net/http"
	"strings"

	"github.com/sportsworldcentral/swc-api/internal/domain/player"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
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

	players, err := h.playerService.ListPlayers(ctx, player.Filter{
		FirstName:          strings.TrimSpace(r.URL.Query().Get("first_name")),
		LastName:           strings.TrimSpace(r.URL.Query().Get("last_name")),
		MinimumLastChanged: page.MinimumLastChanged,
		Skip:               page.Skip,
		Limit:              page.Limit,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerDTOs(players))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := parseIDPathValue(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerDTO(p))
}

func (h *Handler) ListPlayerPerformances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerPerformances")
	defer span.End()

	playerID, err := parseIDPathValue(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	scored, err := h.performanceService.ListPlayerPerformances(ctx, playerID, parseScoringTypeParam(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPerformanceDTOs(scored))
}
