package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportsworldcentral/swc-api/internal/domain/league"
	qb "github.com/sportsworldcentral/swc-api/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

var leagueSelectColumns = []string{
	"league_id",
	"league_name",
	"scoring_type",
	"last_changed_date",
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context, filter league.Filter) ([]league.League, error) {
	builder := qb.Select(leagueSelectColumns...).From("leagues")
	if filter.Name != "" {
		builder.Where(qb.ILikeContains("league_name", filter.Name))
	}
	if !filter.MinimumLastChanged.IsZero() {
		builder.Where(qb.Gte("last_changed_date", filter.MinimumLastChanged))
	}

	query, args, err := builder.
		OrderBy("league_id").
		Limit(filter.Limit).
		Offset(filter.Skip).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int32) (league.League, bool, error) {
	query, args, err := qb.Select(leagueSelectColumns...).From("leagues").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build select league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("select league: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *LeagueRepository) Count(ctx context.Context) (int, error) {
	query, _, err := qb.Select("COUNT(*)").From("leagues").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count leagues query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count leagues: %w", err)
	}

	return count, nil
}
