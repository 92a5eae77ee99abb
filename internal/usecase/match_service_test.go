package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchpulse/betting-analysis/internal/domain/match"
	"github.com/matchpulse/betting-analysis/internal/platform/cache"
	"github.com/matchpulse/betting-analysis/internal/platform/clock"
	"github.com/matchpulse/betting-analysis/internal/platform/logging"
	"github.com/matchpulse/betting-analysis/internal/platform/random"
)

type stubProvider struct {
	name     string
	fixtures []match.Fixture
	err      error
	calls    int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) FetchMatches(context.Context, string, string) ([]match.Fixture, error) {
	p.calls++
	return p.fixtures, p.err
}

func stubFixtures(source string, count int) []match.Fixture {
	out := make([]match.Fixture, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, match.Fixture{
			ID:       source + "_1",
			HomeTeam: "Arsenal",
			AwayTeam: "Chelsea",
			League:   "Premier League",
			Status:   match.StatusScheduled,
			Source:   source,
		})
	}
	return out
}

func newMatchService(providers []match.Provider, responses *cache.Store) *MatchService {
	synthetic := NewSyntheticGenerator(
		clock.NewFixed(time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)),
		random.NewSeeded(5),
		OffDayPolicyMixed,
	)
	return NewMatchService(providers, synthetic, responses, time.Second, logging.NewNop())
}

func TestGetMatchesFirstProviderWins(t *testing.T) {
	t.Parallel()

	first := &stubProvider{name: "first", fixtures: stubFixtures("first", 2)}
	second := &stubProvider{name: "second", fixtures: stubFixtures("second", 2)}
	service := newMatchService([]match.Provider{first, second}, nil)

	fixtures := service.GetMatches(context.Background(), saturday, "")
	require.NotEmpty(t, fixtures)
	for _, fixture := range fixtures {
		assert.Equal(t, "first", fixture.Source)
	}
	assert.Equal(t, 0, second.calls, "second provider must not be consulted")
}

func TestGetMatchesFallsThroughOnErrorAndEmpty(t *testing.T) {
	t.Parallel()

	failing := &stubProvider{name: "failing", err: errors.New("boom")}
	empty := &stubProvider{name: "empty"}
	working := &stubProvider{name: "working", fixtures: stubFixtures("working", 1)}
	service := newMatchService([]match.Provider{failing, empty, working}, nil)

	fixtures := service.GetMatches(context.Background(), saturday, "")
	require.Len(t, fixtures, 1)
	assert.Equal(t, "working", fixtures[0].Source)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, empty.calls)
}

func TestGetMatchesSyntheticWhenAllProvidersDown(t *testing.T) {
	t.Parallel()

	failing := &stubProvider{name: "failing", err: errors.New("boom")}
	empty := &stubProvider{name: "empty"}
	service := newMatchService([]match.Provider{failing, empty}, nil)

	fixtures := service.GetMatches(context.Background(), saturday, "")
	require.NotEmpty(t, fixtures, "fallback chain must always produce fixtures")
	for _, fixture := range fixtures {
		assert.Equal(t, "synthetic", fixture.Source)
	}
}

func TestGetMatchesSingleSourcePerResponse(t *testing.T) {
	t.Parallel()

	partial := &stubProvider{name: "partial", fixtures: stubFixtures("partial", 3)}
	service := newMatchService([]match.Provider{partial}, nil)

	fixtures := service.GetMatches(context.Background(), saturday, "")
	sources := make(map[string]bool)
	for _, fixture := range fixtures {
		sources[fixture.Source] = true
	}
	assert.Len(t, sources, 1)
}

func TestGetMatchesResponseCache(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{name: "cached", fixtures: stubFixtures("cached", 2)}
	responses := cache.NewStore(time.Minute, nil)
	service := newMatchService([]match.Provider{provider}, responses)

	first := service.GetMatches(context.Background(), saturday, "")
	second := service.GetMatches(context.Background(), saturday, "")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls, "second call should be served from cache")

	service.GetMatches(context.Background(), saturday, "la-liga")
	assert.Equal(t, 2, provider.calls, "different filter is a different cache key")
}
