package usecase

import (
	"context"
	"fmt"

	"github.com/sportsworldcentral/swc-api/internal/domain/league"
	"github.com/sportsworldcentral/swc-api/internal/domain/team"
)

// LeagueWithTeams is a league plus the teams competing in it, the shape
// the read API serves for league endpoints.
type LeagueWithTeams struct {
	League league.League
	Teams  []team.Team
}

type LeagueService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
}

func NewLeagueService(leagueRepo league.Repository, teamRepo team.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context, filter league.Filter) ([]LeagueWithTeams, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	skip, limit, err := normalizePage(filter.Skip, filter.Limit)
	if err != nil {
		return nil, err
	}
	filter.Skip = skip
	filter.Limit = limit

	leagues, err := s.leagueRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]LeagueWithTeams, 0, len(leagues))
	for _, l := range leagues {
		teams, err := s.teamRepo.ListByLeague(ctx, l.ID)
		if err != nil {
			return nil, fmt.Errorf("list teams for league %d: %w", l.ID, err)
		}
		out = append(out, LeagueWithTeams{League: l, Teams: teams})
	}

	return out, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID int32) (LeagueWithTeams, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	if leagueID <= 0 {
		return LeagueWithTeams{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return LeagueWithTeams{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return LeagueWithTeams{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, l.ID)
	if err != nil {
		return LeagueWithTeams{}, fmt.Errorf("list teams for league %d: %w", l.ID, err)
	}

	return LeagueWithTeams{League: l, Teams: teams}, nil
}
