package usecase

import (
	"context"
	"fmt"

	"github.com/sportsworldcentral/swc-api/internal/domain/player"
	"github.com/sportsworldcentral/swc-api/internal/domain/team"
)

// TeamWithRoster is a team plus its resolved roster players.
type TeamWithRoster struct {
	Team    team.Team
	Players []player.Player
}

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewTeamService(teamRepo team.Repository, playerRepo player.Repository) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *TeamService) ListTeams(ctx context.Context, filter team.Filter) ([]TeamWithRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	skip, limit, err := normalizePage(filter.Skip, filter.Limit)
	if err != nil {
		return nil, err
	}
	filter.Skip = skip
	filter.Limit = limit

	teams, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]TeamWithRoster, 0, len(teams))
	for _, t := range teams {
		roster, err := s.resolveRoster(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, TeamWithRoster{Team: t, Players: roster})
	}

	return out, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID int32) (TeamWithRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	if teamID <= 0 {
		return TeamWithRoster{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamWithRoster{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamWithRoster{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	roster, err := s.resolveRoster(ctx, t)
	if err != nil {
		return TeamWithRoster{}, err
	}

	return TeamWithRoster{Team: t, Players: roster}, nil
}

func (s *TeamService) resolveRoster(ctx context.Context, t team.Team) ([]player.Player, error) {
	roster := make([]player.Player, 0, len(t.PlayerIDs))
	for _, playerID := range t.PlayerIDs {
		p, exists, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("resolve roster player %d for team %d: %w", playerID, t.ID, err)
		}
		if !exists {
			// Roster rows referencing removed players are skipped rather
			// than failing the whole read.
			continue
		}
		roster = append(roster, p)
	}

	return roster, nil
}
