package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sportsworldcentral/swc-api/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
	index map[int32]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	sorted := append([]team.Team(nil), teams...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	index := make(map[int32]team.Team, len(sorted))
	for _, t := range sorted {
		index[t.ID] = t
	}

	return &TeamRepository{
		teams: sorted,
		index: index,
	}
}

func (r *TeamRepository) List(_ context.Context, filter team.Filter) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]team.Team, 0, len(r.teams))
	for _, t := range r.teams {
		if filter.Name != "" && !containsFold(t.Name, filter.Name) {
			continue
		}
		if !filter.MinimumLastChanged.IsZero() && t.LastChangedDate.Before(filter.MinimumLastChanged) {
			continue
		}
		matched = append(matched, t)
	}

	return paginate(matched, filter.Skip, filter.Limit), nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID int32) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, t := range r.teams {
		if t.LeagueID == leagueID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int32) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.index[teamID]

	return t, ok, nil
}

func (r *TeamRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.teams), nil
}
