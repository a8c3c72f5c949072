package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/sportsworldcentral/swc-api/internal/domain/league"
	"github.com/sportsworldcentral/swc-api/internal/domain/scoring"
	"github.com/sportsworldcentral/swc-api/internal/domain/team"
	"github.com/sportsworldcentral/swc-api/internal/infrastructure/repository/memory"
	leaguemock "github.com/sportsworldcentral/swc-api/internal/mocks/domain/league"
	teammock "github.com/sportsworldcentral/swc-api/internal/mocks/domain/team"
)

func TestLeagueService_GetLeague_EmbedsTeams(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
	)

	got, err := service.GetLeague(context.Background(), memory.LeagueIDPigskinProdigal)
	if err != nil {
		t.Fatalf("get league: %v", err)
	}
	if got.League.Name != "Pigskin Prodigal Fantasy League" {
		t.Fatalf("unexpected league: %+v", got.League)
	}
	if len(got.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got.Teams))
	}
	for _, tm := range got.Teams {
		if tm.LeagueID != got.League.ID {
			t.Fatalf("team %d belongs to league %d, want %d", tm.ID, tm.LeagueID, got.League.ID)
		}
	}
}

func TestLeagueService_GetLeague_NotFound(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
	)

	if _, err := service.GetLeague(context.Background(), 99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_ListLeagues_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewLeagueService(leagueRepo, teamRepo)
	expectedLeagues := []league.League{
		{ID: 5001, Name: "Pigskin Prodigal Fantasy League", ScoringType: scoring.TypePPR},
	}
	expectedTeams := []team.Team{
		{ID: 8001, LeagueID: 5001, Name: "Hoboken Hurlers"},
		{ID: 8002, LeagueID: 5001, Name: "Peoria Punishers"},
	}

	leagueRepo.
		On("List", mock.Anything, mock.MatchedBy(func(f league.Filter) bool {
			return f.Name == "pigskin" && f.Limit == DefaultPageLimit
		})).
		Return(expectedLeagues, nil).
		Once()
	teamRepo.
		On("ListByLeague", mock.Anything, int32(5001)).
		Return(expectedTeams, nil).
		Once()

	got, err := service.ListLeagues(ctx, league.Filter{Name: "pigskin"})
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 league, got %d", len(got))
	}
	if len(got[0].Teams) != 2 {
		t.Fatalf("expected 2 embedded teams, got %d", len(got[0].Teams))
	}
}

func TestLeagueService_ListLeagues_TeamLookupFailureUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewLeagueService(leagueRepo, teamRepo)

	leagueRepo.
		On("List", mock.Anything, mock.Anything).
		Return([]league.League{{ID: 5002, Name: "Gridiron Gurus Keeper League"}}, nil).
		Once()
	teamRepo.
		On("ListByLeague", mock.Anything, int32(5002)).
		Return(nil, errors.New("connection reset")).
		Once()

	if _, err := service.ListLeagues(context.Background(), league.Filter{}); err == nil {
		t.Fatalf("expected team lookup error to propagate")
	}
}
