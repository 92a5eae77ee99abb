package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchpulse/betting-analysis/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	const query = `SELECT id, league_id, name, created_at FROM teams WHERE league_id = $1 ORDER BY name`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("select teams by league: %w", err)
	}

	return mapTeams(rows), nil
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]team.Team, error) {
	const query = `SELECT id, league_id, name, created_at FROM teams ORDER BY league_id, name`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select all teams: %w", err)
	}

	return mapTeams(rows), nil
}

func mapTeams(rows []teamTableModel) []team.Team {
	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:       row.ID,
			LeagueID: row.LeagueID,
			Name:     row.Name,
		})
	}
	return out
}
