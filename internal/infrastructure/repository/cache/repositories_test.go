package cache

import (
	"context"
	"testing"
	"time"

	"github.com/matchpulse/betting-analysis/internal/domain/league"
	"github.com/matchpulse/betting-analysis/internal/domain/team"
	basecache "github.com/matchpulse/betting-analysis/internal/platform/cache"
	"github.com/matchpulse/betting-analysis/internal/platform/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLeagueRepo struct {
	listCalls int
	getCalls  int
}

func (r *countingLeagueRepo) List(context.Context) ([]league.League, error) {
	r.listCalls++
	return []league.League{{ID: "premier-league", Name: "Premier League", Country: "England", Slug: "premier-league"}}, nil
}

func (r *countingLeagueRepo) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.getCalls++
	if leagueID != "premier-league" {
		return league.League{}, false, nil
	}
	return league.League{ID: "premier-league", Name: "Premier League"}, true, nil
}

type countingTeamRepo struct {
	calls int
}

func (r *countingTeamRepo) ListByLeague(context.Context, string) ([]team.Team, error) {
	r.calls++
	return []team.Team{{ID: "eng-ars", LeagueID: "premier-league", Name: "Arsenal"}}, nil
}

func (r *countingTeamRepo) ListAll(context.Context) ([]team.Team, error) {
	r.calls++
	return []team.Team{{ID: "eng-ars", LeagueID: "premier-league", Name: "Arsenal"}}, nil
}

func TestLeagueRepositoryCachesReads(t *testing.T) {
	t.Parallel()

	clk := clock.NewFixed(time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC))
	next := &countingLeagueRepo{}
	repo := NewLeagueRepository(next, basecache.NewStore(10*time.Minute, clk))

	ctx := context.Background()
	for range 3 {
		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
	}
	assert.Equal(t, 1, next.listCalls)

	for range 3 {
		_, exists, err := repo.GetByID(ctx, "premier-league")
		require.NoError(t, err)
		assert.True(t, exists)
	}
	assert.Equal(t, 1, next.getCalls)
}

func TestLeagueRepositoryCachesMisses(t *testing.T) {
	t.Parallel()

	clk := clock.NewFixed(time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC))
	next := &countingLeagueRepo{}
	repo := NewLeagueRepository(next, basecache.NewStore(10*time.Minute, clk))

	ctx := context.Background()
	for range 2 {
		_, exists, err := repo.GetByID(ctx, "serie-b")
		require.NoError(t, err)
		assert.False(t, exists)
	}
	assert.Equal(t, 1, next.getCalls)
}

func TestTeamRepositoryExpiresWithTTL(t *testing.T) {
	t.Parallel()

	clk := clock.NewFixed(time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC))
	next := &countingTeamRepo{}
	repo := NewTeamRepository(next, basecache.NewStore(10*time.Minute, clk))

	ctx := context.Background()
	_, err := repo.ListByLeague(ctx, "premier-league")
	require.NoError(t, err)
	_, err = repo.ListByLeague(ctx, "premier-league")
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)

	clk.Advance(11 * time.Minute)
	_, err = repo.ListByLeague(ctx, "premier-league")
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}
