package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchpulse/betting-analysis/internal/infrastructure/repository/memory"
)

func newCatalogService() *CatalogService {
	return NewCatalogService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
	)
}

func TestListLeagues(t *testing.T) {
	t.Parallel()

	leagues, err := newCatalogService().ListLeagues(context.Background())
	require.NoError(t, err)
	require.Len(t, leagues, 5)
	assert.Equal(t, "Premier League", leagues[0].Name)
	assert.Equal(t, "England", leagues[0].Country)
}

func TestListTeamsByLeague(t *testing.T) {
	t.Parallel()

	service := newCatalogService()

	teams, err := service.ListTeamsByLeague(context.Background(), memory.LeagueIDLaLiga)
	require.NoError(t, err)
	require.Len(t, teams, 4)
	assert.Equal(t, "Real Madrid", teams[0].Name)

	_, err = service.ListTeamsByLeague(context.Background(), "serie-b")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.ListTeamsByLeague(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamNames(t *testing.T) {
	t.Parallel()

	names, err := newCatalogService().TeamNames(context.Background())
	require.NoError(t, err)
	assert.Contains(t, names, "Arsenal")
	assert.Contains(t, names, "Bayern Munich")
	assert.GreaterOrEqual(t, len(names), 15)
}
