package match

import "context"

// Provider fetches and normalizes fixtures from one upstream source.
// The date parameter is a YYYY-MM-DD string. A provider without credentials
// returns an empty slice and a nil error; it must not touch the network.
type Provider interface {
	Name() string
	FetchMatches(ctx context.Context, date, leagueFilter string) ([]Fixture, error)
}
