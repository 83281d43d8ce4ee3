// Package app wires configuration, storage, caches and use cases into the
// servers run by the binaries.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/domain/analytics"
	"github.com/riskibarqy/football-stats/internal/domain/player"
	cacherepo "github.com/riskibarqy/football-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-stats/internal/interfaces/mcpserver"
	basecache "github.com/riskibarqy/football-stats/internal/platform/cache"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/platform/resilience"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

const (
	dbMaxOpenConns    = 10
	dbMaxIdleConns    = 5
	dbConnMaxLifetime = 30 * time.Minute
	dependencyTimeout = 5 * time.Second
)

// Services groups the use cases shared by every transport.
type Services struct {
	Search     *usecase.SearchService
	Ranking    *usecase.RankingService
	Comparison *usecase.ComparisonService
	Benchmark  *usecase.BenchmarkService
	SetPiece   *usecase.SetPieceService
	League     *usecase.LeagueService
	Player     *usecase.PlayerService
	Import     *usecase.ImportService
}

type App struct {
	cfg      config.Config
	logger   *logging.Logger
	repo     player.Repository
	services Services
	closers  []func() error
}

// New builds the repository stack for cfg.StoreBackend and the use cases on
// top of it. Close releases every opened dependency.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	a := &App{cfg: cfg, logger: logger}

	repo, err := a.buildRepository(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.repo = repo
	a.services = NewServices(repo, logger)

	return a, nil
}

func NewServices(repo player.Repository, logger *logging.Logger) Services {
	return Services{
		Search:     usecase.NewSearchService(repo),
		Ranking:    usecase.NewRankingService(repo),
		Comparison: usecase.NewComparisonService(repo, analytics.NewScorer()),
		Benchmark:  usecase.NewBenchmarkService(repo),
		SetPiece:   usecase.NewSetPieceService(repo),
		League:     usecase.NewLeagueService(repo),
		Player:     usecase.NewPlayerService(repo),
		Import:     usecase.NewImportService(repo, logger),
	}
}

func (a *App) Services() Services {
	return a.services
}

func (a *App) Repository() player.Repository {
	return a.repo
}

// HTTPServer returns the REST API server.
func (a *App) HTTPServer() (*http.Server, error) {
	if a.cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	s := a.services
	handler := httpapi.NewHandler(s.Search, s.Ranking, s.Comparison, s.Benchmark, s.SetPiece, s.League, s.Player, a.logger)

	return &http.Server{
		Addr:         a.cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, a.logger, a.cfg.CORSAllowedOrigins),
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
	}, nil
}

// MCPServer returns the Model Context Protocol server over streamable HTTP.
func (a *App) MCPServer() (*http.Server, error) {
	if a.cfg.MCPAddr == "" {
		return nil, fmt.Errorf("mcp server addr cannot be empty")
	}

	s := a.services
	server := mcpserver.New(s.Search, s.Ranking, s.Comparison, s.Benchmark, s.SetPiece, a.cfg.ServiceVersion, a.logger)

	return &http.Server{
		Addr:        a.cfg.MCPAddr,
		Handler:     server.Handler(a.cfg.MCPAPIKey, a.cfg.CORSAllowedOrigins),
		ReadTimeout: a.cfg.ReadTimeout,
	}, nil
}

// Close releases dependencies in reverse opening order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) buildRepository(ctx context.Context) (player.Repository, error) {
	var repo player.Repository
	switch a.cfg.StoreBackend {
	case config.StorePostgres:
		db, err := a.openDB(ctx)
		if err != nil {
			return nil, err
		}
		repo = postgres.NewPlayerRepository(db)
	default:
		repo = memory.NewPlayerRepository(memory.SeedPlayers())
	}

	if !a.cfg.CacheEnabled {
		return repo, nil
	}

	opts := []cacherepo.Option{cacherepo.WithLogger(a.logger)}
	if shared := a.openRedis(ctx); shared != nil {
		opts = append(opts, cacherepo.WithSharedStore(shared))
	}
	return cacherepo.NewPlayerRepository(repo, basecache.NewStore(a.cfg.CacheTTL, basecache.WithMaxEntries(a.cfg.CacheMaxEntries)), opts...), nil
}

// openRedis returns nil when redis is disabled or unreachable; the shared
// level is optional and the in-process cache still serves.
func (a *App) openRedis(ctx context.Context) *basecache.RedisStore {
	if !a.cfg.RedisEnabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
		DB:       a.cfg.RedisDB,
	})
	breaker := resilience.NewBreaker(a.cfg.RedisCircuit)
	store := basecache.NewRedisStore(client, a.cfg.CacheTTL, a.cfg.RedisKeyPrefix, breaker)

	pingCtx, cancel := context.WithTimeout(ctx, dependencyTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		a.logger.Warn("redis unavailable, using in-process cache only", "addr", a.cfg.RedisAddr, "error", err)
		_ = store.Close()
		return nil
	}

	a.closers = append(a.closers, store.Close)
	a.logger.Info("redis connected", "addr", a.cfg.RedisAddr, "db", a.cfg.RedisDB)
	return store
}
