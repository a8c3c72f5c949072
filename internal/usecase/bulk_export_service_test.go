package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/sportsworldcentral/swc-api/internal/infrastructure/repository/memory"
	"github.com/sportsworldcentral/swc-api/internal/platform/cache"
)

func newBulkExportService(store *cache.Store) *BulkExportService {
	return NewBulkExportService(
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewPerformanceRepository(memory.SeedPerformances()),
		store,
		2,
	)
}

func parseExport(t *testing.T, data []byte) [][]string {
	t.Helper()

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return records
}

func TestBulkExportService_ExportFile_Players(t *testing.T) {
	t.Parallel()

	service := newBulkExportService(nil)

	data, err := service.ExportFile(context.Background(), BulkFilePlayers)
	if err != nil {
		t.Fatalf("export players: %v", err)
	}

	records := parseExport(t, data)
	if len(records) != len(memory.SeedPlayers())+1 {
		t.Fatalf("expected header plus %d rows, got %d", len(memory.SeedPlayers()), len(records))
	}
	if records[0][0] != "player_id" || records[0][3] != "position" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][0] != "1001" || records[1][2] != "Yearwood" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
}

func TestBulkExportService_ExportFile_TeamPlayersHasOneRowPerRosterSlot(t *testing.T) {
	t.Parallel()

	service := newBulkExportService(nil)

	data, err := service.ExportFile(context.Background(), BulkFileTeamPlayers)
	if err != nil {
		t.Fatalf("export team players: %v", err)
	}

	wantRows := 0
	for _, tm := range memory.SeedTeams() {
		wantRows += len(tm.PlayerIDs)
	}

	records := parseExport(t, data)
	if len(records) != wantRows+1 {
		t.Fatalf("expected header plus %d rows, got %d", wantRows, len(records))
	}
}

func TestBulkExportService_ExportFile_UnknownFile(t *testing.T) {
	t.Parallel()

	service := newBulkExportService(nil)

	_, err := service.ExportFile(context.Background(), "roster_data.csv")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBulkExportService_ExportFile_ServesFromCache(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(time.Minute)
	service := newBulkExportService(store)
	ctx := context.Background()

	first, err := service.ExportFile(ctx, BulkFileLeagues)
	if err != nil {
		t.Fatalf("first export: %v", err)
	}
	second, err := service.ExportFile(ctx, BulkFileLeagues)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("cached export differs from first render")
	}
}

func TestBulkExportService_ExportAll(t *testing.T) {
	t.Parallel()

	service := newBulkExportService(cache.NewStore(time.Minute))

	files, err := service.ExportAll(context.Background())
	if err != nil {
		t.Fatalf("export all: %v", err)
	}
	if len(files) != len(BulkFileNames()) {
		t.Fatalf("expected %d files, got %d", len(BulkFileNames()), len(files))
	}

	perf := parseExport(t, files[BulkFilePerformance])
	if len(perf) != len(memory.SeedPerformances())+1 {
		t.Fatalf("expected %d performance rows, got %d", len(memory.SeedPerformances()), len(perf)-1)
	}
	for i, record := range perf[1:] {
		if _, err := strconv.Atoi(record[2]); err != nil {
			t.Fatalf("row %d week number %q not numeric", i, record[2])
		}
	}
}
