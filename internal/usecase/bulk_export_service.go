package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/sportsworldcentral/swc-api/internal/domain/league"
	"github.com/sportsworldcentral/swc-api/internal/domain/performance"
	"github.com/sportsworldcentral/swc-api/internal/domain/player"
	"github.com/sportsworldcentral/swc-api/internal/domain/team"
	"github.com/sportsworldcentral/swc-api/internal/platform/cache"
)

const (
	BulkFilePlayers     = "player_data.csv"
	BulkFileLeagues     = "league_data.csv"
	BulkFileTeams       = "team_data.csv"
	BulkFileTeamPlayers = "team_player_data.csv"
	BulkFilePerformance = "performance_data.csv"
)

// bulkExportBatchSize caps how many rows a single repository read pulls
// while streaming a full table into a CSV export.
const bulkExportBatchSize = MaxPageLimit

// BulkExportService renders full-table CSV exports. Files are built on
// demand and cached, so repeat downloads inside the cache TTL are free.
type BulkExportService struct {
	playerRepo      player.Repository
	leagueRepo      league.Repository
	teamRepo        team.Repository
	performanceRepo performance.Repository

	store   *cache.Store
	workers int
}

func NewBulkExportService(
	playerRepo player.Repository,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	performanceRepo performance.Repository,
	store *cache.Store,
	workers int,
) *BulkExportService {
	if workers < 1 {
		workers = 1
	}

	return &BulkExportService{
		playerRepo:      playerRepo,
		leagueRepo:      leagueRepo,
		teamRepo:        teamRepo,
		performanceRepo: performanceRepo,
		store:           store,
		workers:         workers,
	}
}

// BulkFileNames lists the downloadable exports in a stable order.
func BulkFileNames() []string {
	return []string{
		BulkFilePlayers,
		BulkFileLeagues,
		BulkFileTeams,
		BulkFileTeamPlayers,
		BulkFilePerformance,
	}
}

// ExportFile renders one named export, serving from cache when fresh.
func (s *BulkExportService) ExportFile(ctx context.Context, fileName string) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BulkExportService.ExportFile")
	defer span.End()

	generate, err := s.generatorFor(fileName)
	if err != nil {
		return nil, err
	}

	if s.store == nil {
		return generate(ctx)
	}

	value, err := s.store.GetOrLoad(ctx, "bulk:"+fileName, func(ctx context.Context) (any, error) {
		return generate(ctx)
	})
	if err != nil {
		return nil, err
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected cached type for bulk file %s", fileName)
	}

	return data, nil
}

// ExportAll renders every export concurrently on a bounded worker pool.
func (s *BulkExportService) ExportAll(ctx context.Context) (map[string][]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BulkExportService.ExportAll")
	defer span.End()

	workerPool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create export worker pool: %w", err)
	}
	defer workerPool.Release()

	var mu sync.Mutex
	out := make(map[string][]byte, len(BulkFileNames()))
	var firstErr error

	var workers sync.WaitGroup
	for _, fileName := range BulkFileNames() {
		fileName := fileName
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			data, exportErr := s.ExportFile(ctx, fileName)

			mu.Lock()
			defer mu.Unlock()
			if exportErr != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("export %s: %w", fileName, exportErr)
				}
				return
			}
			out[fileName] = data
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit export task: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}

func (s *BulkExportService) generatorFor(fileName string) (func(context.Context) ([]byte, error), error) {
	switch fileName {
	case BulkFilePlayers:
		return s.exportPlayers, nil
	case BulkFileLeagues:
		return s.exportLeagues, nil
	case BulkFileTeams:
		return s.exportTeams, nil
	case BulkFileTeamPlayers:
		return s.exportTeamPlayers, nil
	case BulkFilePerformance:
		return s.exportPerformances, nil
	default:
		return nil, fmt.Errorf("%w: unknown bulk file %q", ErrNotFound, fileName)
	}
}

func (s *BulkExportService) exportPlayers(ctx context.Context) ([]byte, error) {
	header := []string{"player_id", "first_name", "last_name", "position", "last_changed_date"}

	return renderCSV(header, func(write func(record []string) error) error {
		return s.eachPlayer(ctx, func(p player.Player) error {
			return write([]string{
				formatID(p.ID),
				p.FirstName,
				p.LastName,
				string(p.Position),
				formatDate(p.LastChangedDate),
			})
		})
	})
}

func (s *BulkExportService) exportLeagues(ctx context.Context) ([]byte, error) {
	header := []string{"league_id", "league_name", "scoring_type", "last_changed_date"}

	return renderCSV(header, func(write func(record []string) error) error {
		return s.eachLeague(ctx, func(l league.League) error {
			return write([]string{
				formatID(l.ID),
				l.Name,
				string(l.ScoringType),
				formatDate(l.LastChangedDate),
			})
		})
	})
}

func (s *BulkExportService) exportTeams(ctx context.Context) ([]byte, error) {
	header := []string{"team_id", "team_name", "league_id", "last_changed_date"}

	return renderCSV(header, func(write func(record []string) error) error {
		return s.eachTeam(ctx, func(t team.Team) error {
			return write([]string{
				formatID(t.ID),
				t.Name,
				formatID(t.LeagueID),
				formatDate(t.LastChangedDate),
			})
		})
	})
}

func (s *BulkExportService) exportTeamPlayers(ctx context.Context) ([]byte, error) {
	header := []string{"team_id", "player_id"}

	return renderCSV(header, func(write func(record []string) error) error {
		return s.eachTeam(ctx, func(t team.Team) error {
			for _, playerID := range t.PlayerIDs {
				if err := write([]string{formatID(t.ID), formatID(playerID)}); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (s *BulkExportService) exportPerformances(ctx context.Context) ([]byte, error) {
	header := []string{
		"performance_id", "player_id", "week_number",
		"passing_yards", "passing_touchdowns", "interceptions",
		"rushing_yards", "rushing_touchdowns",
		"receptions", "receiving_yards", "receiving_touchdowns",
		"fumbles_lost", "two_point_conversions",
		"last_changed_date",
	}

	return renderCSV(header, func(write func(record []string) error) error {
		return s.eachPerformance(ctx, func(p performance.Performance) error {
			return write([]string{
				formatID(p.ID),
				formatID(p.PlayerID),
				strconv.Itoa(p.WeekNumber),
				strconv.Itoa(p.StatLine.PassingYards),
				strconv.Itoa(p.StatLine.PassingTouchdowns),
				strconv.Itoa(p.StatLine.Interceptions),
				strconv.Itoa(p.StatLine.RushingYards),
				strconv.Itoa(p.StatLine.RushingTouchdowns),
				strconv.Itoa(p.StatLine.Receptions),
				strconv.Itoa(p.StatLine.ReceivingYards),
				strconv.Itoa(p.StatLine.ReceivingTouchdowns),
				strconv.Itoa(p.StatLine.FumblesLost),
				strconv.Itoa(p.StatLine.TwoPointConversions),
				formatDate(p.LastChangedDate),
			})
		})
	})
}

func (s *BulkExportService) eachPlayer(ctx context.Context, fn func(player.Player) error) error {
	for skip := 0; ; skip += bulkExportBatchSize {
		batch, err := s.playerRepo.List(ctx, player.Filter{Skip: skip, Limit: bulkExportBatchSize})
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		for _, p := range batch {
			if err := fn(p); err != nil {
				return err
			}
		}
		if len(batch) < bulkExportBatchSize {
			return nil
		}
	}
}

func (s *BulkExportService) eachLeague(ctx context.Context, fn func(league.League) error) error {
	for skip := 0; ; skip += bulkExportBatchSize {
		batch, err := s.leagueRepo.List(ctx, league.Filter{Skip: skip, Limit: bulkExportBatchSize})
		if err != nil {
			return fmt.Errorf("list leagues: %w", err)
		}
		for _, l := range batch {
			if err := fn(l); err != nil {
				return err
			}
		}
		if len(batch) < bulkExportBatchSize {
			return nil
		}
	}
}

func (s *BulkExportService) eachTeam(ctx context.Context, fn func(team.Team) error) error {
	for skip := 0; ; skip += bulkExportBatchSize {
		batch, err := s.teamRepo.List(ctx, team.Filter{Skip: skip, Limit: bulkExportBatchSize})
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		for _, t := range batch {
			if err := fn(t); err != nil {
				return err
			}
		}
		if len(batch) < bulkExportBatchSize {
			return nil
		}
	}
}

func (s *BulkExportService) eachPerformance(ctx context.Context, fn func(performance.Performance) error) error {
	for skip := 0; ; skip += bulkExportBatchSize {
		batch, err := s.performanceRepo.List(ctx, performance.Filter{Skip: skip, Limit: bulkExportBatchSize})
		if err != nil {
			return fmt.Errorf("list performances: %w", err)
		}
		for _, p := range batch {
			if err := fn(p); err != nil {
				return err
			}
		}
		if len(batch) < bulkExportBatchSize {
			return nil
		}
	}
}

func renderCSV(header []string, fill func(write func(record []string) error) error) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := fill(w.Write); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func formatID(id int32) string {
	return strconv.FormatInt(int64(id), 10)
}

func formatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
