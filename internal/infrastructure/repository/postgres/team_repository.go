package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportsworldcentral/swc-api/internal/domain/team"
	qb "github.com/sportsworldcentral/swc-api/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

var teamSelectColumns = []string{
	"team_id",
	"team_name",
	"league_id",
	"last_changed_date",
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	builder := qb.Select(teamSelectColumns...).From("teams")
	if filter.Name != "" {
		builder.Where(qb.ILikeContains("team_name", filter.Name))
	}
	if !filter.MinimumLastChanged.IsZero() {
		builder.Where(qb.Gte("last_changed_date", filter.MinimumLastChanged))
	}

	query, args, err := builder.
		OrderBy("team_id").
		Limit(filter.Limit).
		Offset(filter.Skip).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID int32) ([]team.Team, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by league query: %w", err)
	}

	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int32) (team.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team: %w", err)
	}

	out := []team.Team{row.toDomain()}
	if err := r.attachRosters(ctx, out); err != nil {
		return team.Team{}, false, err
	}

	return out[0], true, nil
}

func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	query, _, err := qb.Select("COUNT(*)").From("teams").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count teams query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}

	return count, nil
}

func (r *TeamRepository) selectTeams(ctx context.Context, query string, args []any) ([]team.Team, error) {
	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	if err := r.attachRosters(ctx, out); err != nil {
		return nil, err
	}

	return out, nil
}

// attachRosters fills PlayerIDs for the given teams in one roster query.
// The slice is mutated in place.
func (r *TeamRepository) attachRosters(ctx context.Context, teams []team.Team) error {
	if len(teams) == 0 {
		return nil
	}

	teamIDs := make([]int32, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}

	query, args, err := qb.Select("team_id", "player_id").From("team_players").
		Where(qb.In("team_id", int32SliceToAny(teamIDs))).
		OrderBy("team_id", "player_id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select rosters query: %w", err)
	}

	var rows []teamPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("select rosters: %w", err)
	}

	rosterByTeam := make(map[int32][]int32, len(teams))
	for _, row := range rows {
		rosterByTeam[row.TeamID] = append(rosterByTeam[row.TeamID], row.PlayerID)
	}
	for i := range teams {
		teams[i].PlayerIDs = rosterByTeam[teams[i].ID]
	}

	return nil
}
