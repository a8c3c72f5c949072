package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sportsworldcentral/swc-api/internal/domain/scoring"
	"github.com/sportsworldcentral/swc-api/internal/usecase"
)

// listQuery carries the pagination and change-tracking parameters shared
// by every list endpoint.
type listQuery struct {
	Skip               int `validate:"gte=0"`
	Limit              int `validate:"gte=0,lte=500"`
	MinimumLastChanged time.Time
}

func (h *Handler) validateQuery(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateQuery")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parseListQuery(r *http.Request) (listQuery, error) {
	query := r.URL.Query()

	skip, err := parseIntParam(query.Get("skip"), 0)
	if err != nil {
		return listQuery{}, fmt.Errorf("%w: invalid skip: %v", usecase.ErrInvalidInput, err)
	}
	limit, err := parseIntParam(query.Get("limit"), 0)
	if err != nil {
		return listQuery{}, fmt.Errorf("%w: invalid limit: %v", usecase.ErrInvalidInput, err)
	}
	minChanged, err := parseDateParam(query.Get("minimum_last_changed_date"))
	if err != nil {
		return listQuery{}, fmt.Errorf("%w: invalid minimum_last_changed_date: %v", usecase.ErrInvalidInput, err)
	}

	return listQuery{
		Skip:               skip,
		Limit:              limit,
		MinimumLastChanged: minChanged,
	}, nil
}

func parseIntParam(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}

func parseDateParam(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(dateLayout, raw)
}

func parseIDPathValue(r *http.Request, name string) (int32, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}

	return int32(parsed), nil
}

func parseScoringTypeParam(r *http.Request) scoring.Type {
	return scoring.Type(strings.TrimSpace(r.URL.Query().Get("scoring_type")))
}
