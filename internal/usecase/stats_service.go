package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/matchpulse/betting-analysis/internal/domain/rating"
	"github.com/matchpulse/betting-analysis/internal/domain/teamstats"
	"github.com/matchpulse/betting-analysis/internal/platform/clock"
	"github.com/matchpulse/betting-analysis/internal/platform/logging"
	"github.com/matchpulse/betting-analysis/internal/platform/random"
)

const (
	defaultStatsTTL      = 30 * time.Minute
	defaultStatsCapacity = 50
)

// StatsService derives and caches team strength profiles. A single mutex
// guards the check-compute-insert sequence so a hit inside the TTL returns
// the stored value without re-randomization.
type StatsService struct {
	mu      sync.Mutex
	entries map[string]teamstats.TeamStats

	ratings  *rating.Model
	rng      random.Source
	clk      clock.Clock
	ttl      time.Duration
	capacity int
	logger   *logging.Logger
}

func NewStatsService(
	ratings *rating.Model,
	rng random.Source,
	clk clock.Clock,
	ttl time.Duration,
	capacity int,
	logger *logging.Logger,
) *StatsService {
	if rng == nil {
		rng = random.NewLocked()
	}
	if ratings == nil {
		ratings = rating.NewModel(rng)
	}
	if clk == nil {
		clk = clock.System()
	}
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	if capacity < 1 {
		capacity = defaultStatsCapacity
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{
		entries:  make(map[string]teamstats.TeamStats),
		ratings:  ratings,
		rng:      rng,
		clk:      clk,
		ttl:      ttl,
		capacity: capacity,
		logger:   logger,
	}
}

// GetStats returns the cached profile for a team, deriving a fresh one on
// miss or expiry. Team names are matched case-insensitively.
func (s *StatsService) GetStats(ctx context.Context, team string) teamstats.TeamStats {
	_, span := startUsecaseSpan(ctx, "StatsService.GetStats")
	defer span.End()

	key := strings.ToLower(strings.TrimSpace(team))
	now := s.clk.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok && now.Before(entry.ExpiresAt) {
		return entry
	}

	stats := teamstats.Derive(team, s.ratings.RatingOf(team), s.rng)
	stats.ComputedAt = now
	stats.ExpiresAt = now.Add(s.ttl)

	// Capacity bound: a full cache is flushed wholesale before inserting.
	if len(s.entries) >= s.capacity {
		s.logger.Debug("stats cache at capacity, flushing", "capacity", s.capacity)
		s.entries = make(map[string]teamstats.TeamStats)
	}
	s.entries[key] = stats

	return stats
}

// Warm precomputes stats for the given teams, bounded by the cache capacity
// so warm-up can never trigger a flush.
func (s *StatsService) Warm(ctx context.Context, teams []string) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.Warm")
	defer span.End()

	if len(teams) > s.capacity {
		teams = teams[:s.capacity]
	}

	var wg conc.WaitGroup
	for _, team := range teams {
		team := team
		wg.Go(func() {
			s.GetStats(ctx, team)
		})
	}
	wg.Wait()

	s.logger.InfoContext(ctx, "team stats warmed", "teams", len(teams))
}

// Len reports the number of cached profiles.
func (s *StatsService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
