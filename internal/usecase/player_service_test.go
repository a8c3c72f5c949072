package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sportsworldcentral/swc-api/internal/domain/player"
	"github.com/sportsworldcentral/swc-api/internal/infrastructure/repository/memory"
)

func TestPlayerService_ListPlayers_Filters(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))
	ctx := context.Background()

	all, err := service.ListPlayers(ctx, player.Filter{})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(all) != len(memory.SeedPlayers()) {
		t.Fatalf("expected %d players, got %d", len(memory.SeedPlayers()), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("players not ordered by id: %d before %d", all[i-1].ID, all[i].ID)
		}
	}

	byLastName, err := service.ListPlayers(ctx, player.Filter{LastName: "cole"})
	if err != nil {
		t.Fatalf("list players by last name: %v", err)
	}
	if len(byLastName) != 1 || byLastName[0].LastName != "Coleman" {
		t.Fatalf("unexpected last name match: %+v", byLastName)
	}

	minDate := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	changed, err := service.ListPlayers(ctx, player.Filter{MinimumLastChanged: minDate})
	if err != nil {
		t.Fatalf("list changed players: %v", err)
	}
	for _, p := range changed {
		if p.LastChangedDate.Before(minDate) {
			t.Fatalf("player %d changed %v, before cutoff %v", p.ID, p.LastChangedDate, minDate)
		}
	}
	if len(changed) != 2 {
		t.Fatalf("expected 2 recently changed players, got %d", len(changed))
	}
}

func TestPlayerService_ListPlayers_Pagination(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))
	ctx := context.Background()

	page, err := service.ListPlayers(ctx, player.Filter{Skip: 2, Limit: 3})
	if err != nil {
		t.Fatalf("list players page: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("expected 3 players, got %d", len(page))
	}
	if page[0].ID != 1003 {
		t.Fatalf("expected page to start at player 1003, got %d", page[0].ID)
	}

	if _, err := service.ListPlayers(ctx, player.Filter{Skip: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative skip, got %v", err)
	}
	if _, err := service.ListPlayers(ctx, player.Filter{Limit: MaxPageLimit + 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized limit, got %v", err)
	}
}

func TestPlayerService_GetPlayer(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))
	ctx := context.Background()

	p, err := service.GetPlayer(ctx, 1001)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.LastName != "Yearwood" {
		t.Fatalf("unexpected player: %+v", p)
	}

	if _, err := service.GetPlayer(ctx, 99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.GetPlayer(ctx, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
