package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"

	_ "github.com/lib/pq"

	"github.com/sportsworldcentral/swc-api/internal/config"
	"github.com/sportsworldcentral/swc-api/internal/domain/league"
	"github.com/sportsworldcentral/swc-api/internal/domain/performance"
	"github.com/sportsworldcentral/swc-api/internal/domain/player"
	"github.com/sportsworldcentral/swc-api/internal/domain/team"
	"github.com/sportsworldcentral/swc-api/internal/infrastructure/repository/memory"
	"github.com/sportsworldcentral/swc-api/internal/infrastructure/repository/postgres"
	"github.com/sportsworldcentral/swc-api/internal/interfaces/httpapi"
	"github.com/sportsworldcentral/swc-api/internal/platform/cache"
	idgen "github.com/sportsworldcentral/swc-api/internal/platform/id"
	"github.com/sportsworldcentral/swc-api/internal/platform/logging"
	"github.com/sportsworldcentral/swc-api/internal/platform/ratelimit"
	"github.com/sportsworldcentral/swc-api/internal/usecase"
)

type repositories struct {
	players      player.Repository
	leagues      league.Repository
	teams        team.Repository
	performances performance.Repository
}

// NewHTTPServer wires repositories, services, and middleware into a ready
// http.Server. The returned cleanup closes the database and quota store
// connections and must be called after the server shuts down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	closers := []func() error{}
	cleanup := func() error {
		var firstErr error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	repos, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if db != nil {
		closers = append(closers, db.Close)
	}

	limiter, redisClient, err := buildLimiter(cfg, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	if redisClient != nil {
		closers = append(closers, redisClient.Close)
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	playerSvc := usecase.NewPlayerService(repos.players)
	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.teams)
	teamSvc := usecase.NewTeamService(repos.teams, repos.players)
	performanceSvc := usecase.NewPerformanceService(repos.performances, playerSvc)
	analyticsSvc := usecase.NewAnalyticsService(repos.leagues, repos.teams, repos.players, store)
	bulkSvc := usecase.NewBulkExportService(repos.players, repos.leagues, repos.teams, repos.performances, store, cfg.BulkExportWorkers)

	handler := httpapi.NewHandler(playerSvc, leagueSvc, teamSvc, performanceSvc, analyticsSvc, bulkSvc, logger)
	router := httpapi.NewRouter(handler, limiter, logger, idgen.NewRandomGenerator(), cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// buildRepositories picks Postgres when DB_URL is set and falls back to the
// seeded in-memory dataset otherwise. The memory path keeps local development
// and CI working without a database.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		return repositories{
			players:      memory.NewPlayerRepository(memory.SeedPlayers()),
			leagues:      memory.NewLeagueRepository(memory.SeedLeagues()),
			teams:        memory.NewTeamRepository(memory.SeedTeams()),
			performances: memory.NewPerformanceRepository(memory.SeedPerformances()),
		}, nil, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info("using postgres repositories", "db_name", dbNameFromURL(dbURL))

	return repositories{
		players:      postgres.NewPlayerRepository(db),
		leagues:      postgres.NewLeagueRepository(db),
		teams:        postgres.NewTeamRepository(db),
		performances: postgres.NewPerformanceRepository(db),
	}, db, nil
}

// buildLimiter assembles the daily quota limiter. Redis backs the counters
// when RATE_LIMIT_REDIS_URL is set so quotas survive restarts and are shared
// across replicas; otherwise counters live in process memory.
func buildLimiter(cfg config.Config, logger *logging.Logger) (*ratelimit.Limiter, *redis.Client, error) {
	if !cfg.RateLimitEnabled {
		logger.Info("rate limiting disabled", "reason", "RATE_LIMIT_ENABLED=false")
		return nil, nil, nil
	}

	if strings.TrimSpace(cfg.RateLimitRedisURL) == "" {
		limiter, err := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), cfg.RateLimitDailyQuota)
		if err != nil {
			return nil, nil, fmt.Errorf("build rate limiter: %w", err)
		}
		logger.Info("rate limiting enabled", "store", "memory", "daily_quota", cfg.RateLimitDailyQuota)
		return limiter, nil, nil
	}

	opts, err := redis.ParseURL(cfg.RateLimitRedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse RATE_LIMIT_REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	store, err := ratelimit.NewRedisStore(client, "")
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("build redis quota store: %w", err)
	}

	limiter, err := ratelimit.NewLimiter(store, cfg.RateLimitDailyQuota)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("build rate limiter: %w", err)
	}

	logger.Info("rate limiting enabled", "store", "redis", "daily_quota", cfg.RateLimitDailyQuota)

	return limiter, client, nil
}
