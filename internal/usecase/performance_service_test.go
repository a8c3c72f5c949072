package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sportsworldcentral/swc-api/internal/domain/performance"
	"github.com/sportsworldcentral/swc-api/internal/domain/scoring"
	"github.com/sportsworldcentral/swc-api/internal/infrastructure/repository/memory"
)

func newPerformanceService() *PerformanceService {
	playerSvc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))
	return NewPerformanceService(memory.NewPerformanceRepository(memory.SeedPerformances()), playerSvc)
}

func TestPerformanceService_ListPerformances_ScoresPPRByDefault(t *testing.T) {
	t.Parallel()

	service := newPerformanceService()

	scored, err := service.ListPerformances(context.Background(), performance.Filter{}, "")
	if err != nil {
		t.Fatalf("list performances: %v", err)
	}
	if len(scored) != len(memory.SeedPerformances()) {
		t.Fatalf("expected %d performances, got %d", len(memory.SeedPerformances()), len(scored))
	}

	// 275 pass yds + 2 pass TD - 1 INT + 30 rush yds = 11 + 8 - 2 + 3.
	first := scored[0]
	if first.Performance.ID != 9001 {
		t.Fatalf("expected performance 9001 first, got %d", first.Performance.ID)
	}
	if first.FantasyPoints != 20 {
		t.Fatalf("fantasy points = %v, want 20", first.FantasyPoints)
	}
}

func TestPerformanceService_ListPerformances_ScoringTypeChangesReceptionValue(t *testing.T) {
	t.Parallel()

	service := newPerformanceService()
	ctx := context.Background()

	ppr, err := service.ListPerformances(ctx, performance.Filter{}, scoring.TypePPR)
	if err != nil {
		t.Fatalf("list PPR: %v", err)
	}
	standard, err := service.ListPerformances(ctx, performance.Filter{}, scoring.TypeStandard)
	if err != nil {
		t.Fatalf("list standard: %v", err)
	}

	// Performance 9004 has 8 receptions, worth 8 extra points under PPR.
	var pprPoints, stdPoints float64
	for i := range ppr {
		if ppr[i].Performance.ID == 9004 {
			pprPoints = ppr[i].FantasyPoints
			stdPoints = standard[i].FantasyPoints
		}
	}
	if pprPoints-stdPoints != 8 {
		t.Fatalf("PPR minus standard = %v, want 8", pprPoints-stdPoints)
	}
}

func TestPerformanceService_ListPerformances_RejectsUnknownScoringType(t *testing.T) {
	t.Parallel()

	service := newPerformanceService()

	_, err := service.ListPerformances(context.Background(), performance.Filter{}, scoring.Type("superflex"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPerformanceService_ListPlayerPerformances(t *testing.T) {
	t.Parallel()

	service := newPerformanceService()
	ctx := context.Background()

	scored, err := service.ListPlayerPerformances(ctx, 1001, "")
	if err != nil {
		t.Fatalf("list player performances: %v", err)
	}
	if len(scored) != 2 {
		t.Fatalf("expected 2 performances for player 1001, got %d", len(scored))
	}
	for _, s := range scored {
		if s.Performance.PlayerID != 1001 {
			t.Fatalf("unexpected player id %d", s.Performance.PlayerID)
		}
	}

	if _, err := service.ListPlayerPerformances(ctx, 99999, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}
}
