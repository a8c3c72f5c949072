package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportsworldcentral/swc-api/internal/domain/performance"
	qb "github.com/sportsworldcentral/swc-api/internal/platform/querybuilder"
)

type PerformanceRepository struct {
	db *sqlx.DB
}

var performanceSelectColumns = []string{
	"performance_id",
	"player_id",
	"week_number",
	"passing_yards",
	"passing_touchdowns",
	"interceptions",
	"rushing_yards",
	"rushing_touchdowns",
	"receptions",
	"receiving_yards",
	"receiving_touchdowns",
	"fumbles_lost",
	"two_point_conversions",
	"last_changed_date",
}

func NewPerformanceRepository(db *sqlx.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

func (r *PerformanceRepository) List(ctx context.Context, filter performance.Filter) ([]performance.Performance, error) {
	builder := qb.Select(performanceSelectColumns...).From("performances")
	if !filter.MinimumLastChanged.IsZero() {
		builder.Where(qb.Gte("last_changed_date", filter.MinimumLastChanged))
	}

	query, args, err := builder.
		OrderBy("performance_id").
		Limit(filter.Limit).
		Offset(filter.Skip).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select performances query: %w", err)
	}

	return r.selectPerformances(ctx, query, args)
}

func (r *PerformanceRepository) ListByPlayer(ctx context.Context, playerID int32) ([]performance.Performance, error) {
	query, args, err := qb.Select(performanceSelectColumns...).From("performances").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("week_number", "performance_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select performances by player query: %w", err)
	}

	return r.selectPerformances(ctx, query, args)
}

func (r *PerformanceRepository) selectPerformances(ctx context.Context, query string, args []any) ([]performance.Performance, error) {
	var rows []performanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select performances: %w", err)
	}

	out := make([]performance.Performance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
