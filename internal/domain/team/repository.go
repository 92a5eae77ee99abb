package team

import "context"

// Repository exposes team catalog reads.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Team, error)
	ListAll(ctx context.Context) ([]Team, error)
}
