package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/sportsworldcentral/swc-api/internal/domain/league"
	"github.com/sportsworldcentral/swc-api/internal/domain/player"
	"github.com/sportsworldcentral/swc-api/internal/domain/team"
	"github.com/sportsworldcentral/swc-api/internal/platform/cache"
)

const countsCacheKey = "analytics:counts"

// Counts is the analytics snapshot served by the counts endpoint.
type Counts struct {
	LeagueCount int `json:"league_count"`
	TeamCount   int `json:"team_count"`
	PlayerCount int `json:"player_count"`
}

type AnalyticsService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	store      *cache.Store
}

// NewAnalyticsService builds the counts service. A nil store disables
// caching and every request hits the repositories.
func NewAnalyticsService(leagueRepo league.Repository, teamRepo team.Repository, playerRepo player.Repository, store *cache.Store) *AnalyticsService {
	return &AnalyticsService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		store:      store,
	}
}

// GetCounts serves the snapshot from cache when fresh, reloading through
// singleflight on a miss.
func (s *AnalyticsService) GetCounts(ctx context.Context) (Counts, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.GetCounts")
	defer span.End()

	if s.store == nil {
		return s.loadCounts(ctx)
	}

	value, err := s.store.GetOrLoad(ctx, countsCacheKey, func(ctx context.Context) (any, error) {
		return s.loadCounts(ctx)
	})
	if err != nil {
		return Counts{}, err
	}

	counts, ok := value.(Counts)
	if !ok {
		return Counts{}, fmt.Errorf("unexpected cached type for counts")
	}

	return counts, nil
}

// loadCounts runs the three table counts concurrently.
func (s *AnalyticsService) loadCounts(ctx context.Context) (Counts, error) {
	var counts Counts

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		n, err := s.leagueRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count leagues: %w", err)
		}
		counts.LeagueCount = n
		return nil
	})
	p.Go(func(ctx context.Context) error {
		n, err := s.teamRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count teams: %w", err)
		}
		counts.TeamCount = n
		return nil
	})
	p.Go(func(ctx context.Context) error {
		n, err := s.playerRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count players: %w", err)
		}
		counts.PlayerCount = n
		return nil
	})

	if err := p.Wait(); err != nil {
		return Counts{}, err
	}

	return counts, nil
}
