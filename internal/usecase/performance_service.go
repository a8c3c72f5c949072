package usecase

import (
	"context"
	"fmt"

	"github.com/sportsworldcentral/swc-api/internal/domain/performance"
	"github.com/sportsworldcentral/swc-api/internal/domain/scoring"
)

// ScoredPerformance is a weekly stat line with its fantasy point value
// under the requested scoring ruleset.
type ScoredPerformance struct {
	Performance   performance.Performance
	FantasyPoints float64
}

type PerformanceService struct {
	performanceRepo performance.Repository
	playerSvc       *PlayerService
}

func NewPerformanceService(performanceRepo performance.Repository, playerSvc *PlayerService) *PerformanceService {
	return &PerformanceService{
		performanceRepo: performanceRepo,
		playerSvc:       playerSvc,
	}
}

// ListPerformances returns stat lines scored under scoringType. An empty
// scoringType falls back to the PPR base rules.
func (s *PerformanceService) ListPerformances(ctx context.Context, filter performance.Filter, scoringType scoring.Type) ([]ScoredPerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.ListPerformances")
	defer span.End()

	skip, limit, err := normalizePage(filter.Skip, filter.Limit)
	if err != nil {
		return nil, err
	}
	filter.Skip = skip
	filter.Limit = limit

	rules, err := rulesFor(scoringType)
	if err != nil {
		return nil, err
	}

	performances, err := s.performanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list performances: %w", err)
	}

	return scoreAll(performances, rules), nil
}

// ListPlayerPerformances returns the full scored history for one player,
// verifying the player exists first.
func (s *PerformanceService) ListPlayerPerformances(ctx context.Context, playerID int32, scoringType scoring.Type) ([]ScoredPerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.ListPlayerPerformances")
	defer span.End()

	rules, err := rulesFor(scoringType)
	if err != nil {
		return nil, err
	}

	if _, err := s.playerSvc.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	performances, err := s.performanceRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list performances for player %d: %w", playerID, err)
	}

	return scoreAll(performances, rules), nil
}

func rulesFor(scoringType scoring.Type) (scoring.Ruleset, error) {
	if scoringType == "" {
		scoringType = scoring.TypePPR
	}

	rules, err := scoring.DefaultRules(scoringType)
	if err != nil {
		return scoring.Ruleset{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return rules, nil
}

func scoreAll(performances []performance.Performance, rules scoring.Ruleset) []ScoredPerformance {
	out := make([]ScoredPerformance, 0, len(performances))
	for _, p := range performances {
		out = append(out, ScoredPerformance{
			Performance:   p,
			FantasyPoints: rules.Score(p.StatLine),
		})
	}

	return out
}
