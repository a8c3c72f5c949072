package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportsworldcentral/swc-api/internal/domain/player"
	qb "github.com/sportsworldcentral/swc-api/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"player_id",
	"first_name",
	"last_name",
	"position",
	"last_changed_date",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players")
	if filter.FirstName != "" {
		builder.Where(qb.ILikeContains("first_name", filter.FirstName))
	}
	if filter.LastName != "" {
		builder.Where(qb.ILikeContains("last_name", filter.LastName))
	}
	if !filter.MinimumLastChanged.IsZero() {
		builder.Where(qb.Gte("last_changed_date", filter.MinimumLastChanged))
	}

	query, args, err := builder.
		OrderBy("player_id").
		Limit(filter.Limit).
		Offset(filter.Skip).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int32) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	query, _, err := qb.Select("COUNT(*)").From("players").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}

	return count, nil
}
