package postgres

import "time"

type leagueTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Country   string    `db:"country"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

type teamTableModel struct {
	ID        string    `db:"id"`
	LeagueID  string    `db:"league_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
