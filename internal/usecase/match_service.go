package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/matchpulse/betting-analysis/internal/domain/match"
	"github.com/matchpulse/betting-analysis/internal/platform/cache"
	"github.com/matchpulse/betting-analysis/internal/platform/logging"
)

const defaultProviderTimeout = 9 * time.Second

// MatchService runs the ordered provider fallback chain. Providers are
// consulted sequentially; the first non-empty, parse-clean result wins, and
// the synthetic generator terminates the chain so GetMatches never fails.
type MatchService struct {
	providers []match.Provider
	synthetic *SyntheticGenerator
	responses *cache.Store
	timeout   time.Duration
	logger    *logging.Logger
}

func NewMatchService(
	providers []match.Provider,
	synthetic *SyntheticGenerator,
	responses *cache.Store,
	timeout time.Duration,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &MatchService{
		providers: providers,
		synthetic: synthetic,
		responses: responses,
		timeout:   timeout,
		logger:    logger,
	}
}

// GetMatches returns the fixtures for a date, optionally filtered by league
// slug. The result always carries exactly one source.
func (s *MatchService) GetMatches(ctx context.Context, date, leagueFilter string) []match.Fixture {
	ctx, span := startUsecaseSpan(ctx, "MatchService.GetMatches")
	defer span.End()

	if s.responses == nil {
		return s.fetch(ctx, date, leagueFilter)
	}

	key := fmt.Sprintf("matches:%s:%s", date, leagueFilter)
	value, err := s.responses.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.fetch(ctx, date, leagueFilter), nil
	})
	if err != nil {
		// The loader never errors; this only guards against misuse.
		return s.fetch(ctx, date, leagueFilter)
	}

	fixtures, ok := value.([]match.Fixture)
	if !ok {
		return s.fetch(ctx, date, leagueFilter)
	}
	return fixtures
}

func (s *MatchService) fetch(ctx context.Context, date, leagueFilter string) []match.Fixture {
	for _, provider := range s.providers {
		fixtures, err := s.fetchOne(ctx, provider, date, leagueFilter)
		if err != nil {
			s.logger.WarnContext(ctx, "fixture provider failed, trying next",
				"provider", provider.Name(),
				"date", date,
				"error", err,
			)
			continue
		}
		if len(fixtures) == 0 {
			s.logger.DebugContext(ctx, "fixture provider returned no fixtures",
				"provider", provider.Name(),
				"date", date,
			)
			continue
		}

		s.logger.InfoContext(ctx, "fixtures fetched",
			"provider", provider.Name(),
			"date", date,
			"count", len(fixtures),
		)
		return fixtures
	}

	s.logger.InfoContext(ctx, "all fixture providers exhausted, generating synthetic fixtures", "date", date)
	return s.synthetic.Generate(date, leagueFilter)
}

func (s *MatchService) fetchOne(ctx context.Context, provider match.Provider, date, leagueFilter string) ([]match.Fixture, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return provider.FetchMatches(callCtx, date, leagueFilter)
}
