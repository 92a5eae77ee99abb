package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/matchpulse/betting-analysis/external/apifootball"
	"github.com/matchpulse/betting-analysis/external/footballdata"
	"github.com/matchpulse/betting-analysis/internal/config"
	"github.com/matchpulse/betting-analysis/internal/domain/league"
	"github.com/matchpulse/betting-analysis/internal/domain/match"
	"github.com/matchpulse/betting-analysis/internal/domain/rating"
	"github.com/matchpulse/betting-analysis/internal/domain/team"
	cacherepo "github.com/matchpulse/betting-analysis/internal/infrastructure/repository/cache"
	"github.com/matchpulse/betting-analysis/internal/infrastructure/repository/memory"
	"github.com/matchpulse/betting-analysis/internal/infrastructure/repository/postgres"
	"github.com/matchpulse/betting-analysis/internal/interfaces/httpapi"
	"github.com/matchpulse/betting-analysis/internal/platform/cache"
	"github.com/matchpulse/betting-analysis/internal/platform/clock"
	"github.com/matchpulse/betting-analysis/internal/platform/logging"
	"github.com/matchpulse/betting-analysis/internal/platform/random"
	"github.com/matchpulse/betting-analysis/internal/platform/resilience"
	"github.com/matchpulse/betting-analysis/internal/usecase"
)

// App bundles the HTTP server with the resources that must be released on
// shutdown.
type App struct {
	Server  *http.Server
	cleanup []func() error
}

func (a *App) Close() error {
	var firstErr error
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		if err := a.cleanup[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	clk := clock.System()
	rng := random.NewLocked()

	app := &App{}

	leagueRepo, teamRepo, err := buildCatalogRepositories(cfg, app, clk)
	if err != nil {
		return nil, err
	}
	catalogSvc := usecase.NewCatalogService(leagueRepo, teamRepo)

	synthetic := usecase.NewSyntheticGenerator(clk, rng, cfg.SyntheticOffDayPolicy)
	var responses *cache.Store
	if cfg.MatchCacheEnabled {
		responses = cache.NewStore(cfg.MatchCacheTTL, clk)
	}
	matchSvc := usecase.NewMatchService(buildProviders(cfg, rng, logger), synthetic, responses, cfg.ProviderTimeout, logger)

	statsSvc := usecase.NewStatsService(
		rating.NewModel(rng),
		rng,
		clk,
		cfg.StatsCacheTTL,
		cfg.StatsCacheCapacity,
		logger,
	)
	analysisSvc := usecase.NewAnalysisService(statsSvc, matchSvc, rng, cfg.AnalysisBatchWorkers, logger)

	if cfg.WarmStatsOnStart {
		go warmStats(catalogSvc, statsSvc, logger)
	}

	handler := httpapi.NewHandler(catalogSvc, matchSvc, analysisSvc, clk, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	app.Server = server

	return app, nil
}

// catalogCacheTTL bounds staleness of catalog reads served in front of
// postgres. The catalog only changes via migrations.
const catalogCacheTTL = 10 * time.Minute

func buildCatalogRepositories(cfg config.Config, app *App, clk clock.Clock) (league.Repository, team.Repository, error) {
	if cfg.CatalogStore == config.CatalogStorePostgres {
		db, err := openDB(cfg.DBURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open catalog db: %w", err)
		}
		app.cleanup = append(app.cleanup, db.Close)

		store := cache.NewStore(catalogCacheTTL, clk)
		return cacherepo.NewLeagueRepository(postgres.NewLeagueRepository(db), store),
			cacherepo.NewTeamRepository(postgres.NewTeamRepository(db), store),
			nil
	}

	return memory.NewLeagueRepository(memory.SeedLeagues()), memory.NewTeamRepository(memory.SeedTeams()), nil
}

func buildProviders(cfg config.Config, rng random.Source, logger *logging.Logger) []match.Provider {
	circuit := resilience.CircuitBreakerConfig{
		Enabled:          cfg.ProviderCircuitEnabled,
		FailureThreshold: cfg.ProviderCircuitFailureCount,
		OpenTimeout:      cfg.ProviderCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.ProviderCircuitHalfOpenMaxReq,
	}

	// Order matters: the fallback chain consults providers front to back.
	return []match.Provider{
		footballdata.NewClient(footballdata.ClientConfig{
			BaseURL:        cfg.FootballDataBaseURL,
			Token:          cfg.FootballDataAPIKey,
			Timeout:        cfg.ProviderTimeout,
			Logger:         logger,
			Random:         rng,
			CircuitBreaker: circuit,
		}),
		apifootball.NewClient(apifootball.ClientConfig{
			BaseURL: cfg.APIFootballBaseURL,
			APIKey:  cfg.APIFootballKey,
			Timeout: cfg.ProviderTimeout,
			Logger:  logger,
			Random:  rng,
		}),
	}
}

func warmStats(catalog *usecase.CatalogService, stats *usecase.StatsService, logger *logging.Logger) {
	ctx := context.Background()
	names, err := catalog.TeamNames(ctx)
	if err != nil {
		logger.Warn("stats warm-up skipped", "error", err)
		return
	}
	stats.Warm(ctx, names)
}
