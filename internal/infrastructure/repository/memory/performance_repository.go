package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sportsworldcentral/swc-api/internal/domain/performance"
)

type PerformanceRepository struct {
	mu           sync.RWMutex
	performances []performance.Performance
}

func NewPerformanceRepository(performances []performance.Performance) *PerformanceRepository {
	sorted := append([]performance.Performance(nil), performances...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return &PerformanceRepository{performances: sorted}
}

func (r *PerformanceRepository) List(_ context.Context, filter performance.Filter) ([]performance.Performance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]performance.Performance, 0, len(r.performances))
	for _, p := range r.performances {
		if !filter.MinimumLastChanged.IsZero() && p.LastChangedDate.Before(filter.MinimumLastChanged) {
			continue
		}
		matched = append(matched, p)
	}

	return paginate(matched, filter.Skip, filter.Limit), nil
}

func (r *PerformanceRepository) ListByPlayer(_ context.Context, playerID int32) ([]performance.Performance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]performance.Performance, 0, 4)
	for _, p := range r.performances {
		if p.PlayerID == playerID {
			out = append(out, p)
		}
	}

	return out, nil
}
