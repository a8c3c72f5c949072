package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sportsworldcentral/swc-api/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	leagues []league.League
	index   map[int32]league.League
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	sorted := append([]league.League(nil), leagues...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	index := make(map[int32]league.League, len(sorted))
	for _, l := range sorted {
		index[l.ID] = l
	}

	return &LeagueRepository{
		leagues: sorted,
		index:   index,
	}
}

func (r *LeagueRepository) List(_ context.Context, filter league.Filter) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]league.League, 0, len(r.leagues))
	for _, l := range r.leagues {
		if filter.Name != "" && !containsFold(l.Name, filter.Name) {
			continue
		}
		if !filter.MinimumLastChanged.IsZero() && l.LastChangedDate.Before(filter.MinimumLastChanged) {
			continue
		}
		matched = append(matched, l)
	}

	return paginate(matched, filter.Skip, filter.Limit), nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int32) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.index[leagueID]

	return l, ok, nil
}

func (r *LeagueRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.leagues), nil
}
