package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchpulse/betting-analysis/internal/domain/rating"
	"github.com/matchpulse/betting-analysis/internal/platform/clock"
	"github.com/matchpulse/betting-analysis/internal/platform/logging"
	"github.com/matchpulse/betting-analysis/internal/platform/random"
)

func newStatsService(clk clock.Clock, ttl time.Duration, capacity int) *StatsService {
	rng := random.NewSeeded(123)
	return NewStatsService(rating.NewModel(rng), rng, clk, ttl, capacity, logging.NewNop())
}

func TestGetStatsCacheHitIsBitIdentical(t *testing.T) {
	t.Parallel()

	clk := clock.NewFixed(time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC))
	service := newStatsService(clk, 30*time.Minute, 50)

	first := service.GetStats(context.Background(), "Arsenal")
	clk.Advance(10 * time.Minute)
	second := service.GetStats(context.Background(), "Arsenal")

	assert.Equal(t, first, second, "hit inside TTL must not re-randomize")
	assert.Equal(t, 1, service.Len())
}

func TestGetStatsKeyIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	clk := clock.NewFixed(time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC))
	service := newStatsService(clk, 30*time.Minute, 50)

	first := service.GetStats(context.Background(), "Arsenal")
	second := service.GetStats(context.Background(), "  arsenal ")

	assert.Equal(t, first.Rating, second.Rating)
	assert.Equal(t, first.RecentForm, second.RecentForm)
	assert.Equal(t, 1, service.Len())
}

func TestGetStatsRecomputesAfterExpiry(t *testing.T) {
	t.Parallel()

	clk := clock.NewFixed(time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC))
	service := newStatsService(clk, 30*time.Minute, 50)

	first := service.GetStats(context.Background(), "Arsenal")
	clk.Advance(31 * time.Minute)
	second := service.GetStats(context.Background(), "Arsenal")

	assert.True(t, second.ComputedAt.After(first.ComputedAt))
	assert.Equal(t, second.ComputedAt.Add(30*time.Minute), second.ExpiresAt)
	// Rating comes from the elite table either way.
	assert.Equal(t, first.Rating, second.Rating)
}

func TestGetStatsCapacityFlush(t *testing.T) {
	t.Parallel()

	clk := clock.NewFixed(time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC))
	service := newStatsService(clk, 30*time.Minute, 50)

	for i := 0; i < 50; i++ {
		service.GetStats(context.Background(), fmt.Sprintf("Team %02d", i))
	}
	require.Equal(t, 50, service.Len())

	service.GetStats(context.Background(), "Team 50")
	assert.Equal(t, 1, service.Len(), "51st distinct team flushes the cache before inserting")
}

func TestWarmBoundedByCapacity(t *testing.T) {
	t.Parallel()

	clk := clock.NewFixed(time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC))
	service := newStatsService(clk, 30*time.Minute, 10)

	teams := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		teams = append(teams, fmt.Sprintf("Team %02d", i))
	}

	service.Warm(context.Background(), teams)
	assert.Equal(t, 10, service.Len(), "warm-up must not exceed capacity")
}

func TestWarmConcurrentSafety(t *testing.T) {
	t.Parallel()

	clk := clock.NewFixed(time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC))
	service := newStatsService(clk, 30*time.Minute, 50)

	teams := []string{"Arsenal", "Chelsea", "Liverpool", "Real Madrid", "Barcelona", "Napoli"}
	service.Warm(context.Background(), teams)
	assert.Equal(t, len(teams), service.Len())
}
