package memory

import (
	"context"
	"sync"

	"github.com/matchpulse/betting-analysis/internal/domain/team"
)

type TeamRepository struct {
	mu            sync.RWMutex
	teamsByLeague map[string][]team.Team
	order         []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	teamsByLeague := make(map[string][]team.Team)
	order := make([]string, 0, 8)
	for _, item := range teams {
		if _, ok := teamsByLeague[item.LeagueID]; !ok {
			order = append(order, item.LeagueID)
		}
		teamsByLeague[item.LeagueID] = append(teamsByLeague[item.LeagueID], item)
	}

	return &TeamRepository{teamsByLeague: teamsByLeague, order: order}
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsByLeague[leagueID]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)
	return out, nil
}

func (r *TeamRepository) ListAll(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, 32)
	for _, leagueID := range r.order {
		out = append(out, r.teamsByLeague[leagueID]...)
	}
	return out, nil
}
