package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sportsworldcentral/swc-api/internal/platform/logging"
	"github.com/sportsworldcentral/swc-api/internal/usecase"
)

type Handler struct {
	playerService      *usecase.PlayerService
	leagueService      *usecase.LeagueService
	teamService        *usecase.TeamService
	performanceService *usecase.PerformanceService
	analyticsService   *usecase.AnalyticsService
	bulkExportService  *usecase.BulkExportService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	performanceService *usecase.PerformanceService,
	analyticsService *usecase.AnalyticsService,
	bulkExportService *usecase.BulkExportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:      playerService,
		leagueService:      leagueService,
		teamService:        teamService,
		performanceService: performanceService,
		analyticsService:   analyticsService,
		bulkExportService:  bulkExportService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Root")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"message": "API health check successful"})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetCounts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCounts")
	defer span.End()

	counts, err := h.analyticsService.GetCounts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get counts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, counts)
}
