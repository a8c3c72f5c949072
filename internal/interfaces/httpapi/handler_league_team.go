package httpapi

import (
	"net/http"
	"strings"

	"github.com/sportsworldcentral/swc-api/internal/domain/league"
	"github.com/sportsworldcentral/swc-api/internal/domain/team"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
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

	leagues, err := h.leagueService.ListLeagues(ctx, league.Filter{
		Name:               strings.TrimSpace(r.URL.Query().Get("league_name")),
		MinimumLastChanged: page.MinimumLastChanged,
		Skip:               page.Skip,
		Limit:              page.Limit,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toLeagueDTOs(leagues))
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID, err := parseIDPathValue(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lw, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toLeagueDTO(lw))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
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

	teams, err := h.teamService.ListTeams(ctx, team.Filter{
		Name:               strings.TrimSpace(r.URL.Query().Get("team_name")),
		MinimumLastChanged: page.MinimumLastChanged,
		Skip:               page.Skip,
		Limit:              page.Limit,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamDTOs(teams))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := parseIDPathValue(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tr, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamDTO(tr))
}
