package memory

import (
	"context"
	"sync"

	"github.com/matchpulse/betting-analysis/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	leagues []league.League
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	out := make([]league.League, 0, len(leagues))
	out = append(out, leagues...)
	return &LeagueRepository{leagues: out}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.leagues))
	out = append(out, r.leagues...)
	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.leagues {
		if item.ID == leagueID {
			return item, true, nil
		}
	}
	return league.League{}, false, nil
}
