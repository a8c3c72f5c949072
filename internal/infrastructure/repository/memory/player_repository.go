package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sportsworldcentral/swc-api/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	index   map[int32]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	sorted := append([]player.Player(nil), players...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	index := make(map[int32]player.Player, len(sorted))
	for _, p := range sorted {
		index[p.ID] = p
	}

	return &PlayerRepository{
		players: sorted,
		index:   index,
	}
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if filter.FirstName != "" && !containsFold(p.FirstName, filter.FirstName) {
			continue
		}
		if filter.LastName != "" && !containsFold(p.LastName, filter.LastName) {
			continue
		}
		if !filter.MinimumLastChanged.IsZero() && p.LastChangedDate.Before(filter.MinimumLastChanged) {
			continue
		}
		matched = append(matched, p)
	}

	return paginate(matched, filter.Skip, filter.Limit), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int32) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[playerID]

	return p, ok, nil
}

func (r *PlayerRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.players), nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	out := make([]T, len(items))
	copy(out, items)

	return out
}
