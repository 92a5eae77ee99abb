package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchpulse/betting-analysis/internal/domain/league"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	const query = `SELECT id, name, country, slug, created_at FROM leagues ORDER BY name`

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.League{
			ID:      row.ID,
			Name:    row.Name,
			Country: row.Country,
			Slug:    row.Slug,
		})
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	const query = `SELECT id, name, country, slug, created_at FROM leagues WHERE id = $1`

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, leagueID); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return league.League{
		ID:      row.ID,
		Name:    row.Name,
		Country: row.Country,
		Slug:    row.Slug,
	}, true, nil
}
