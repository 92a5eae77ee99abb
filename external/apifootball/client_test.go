package apifootball

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchpulse/betting-analysis/external/providererr"
	"github.com/matchpulse/betting-analysis/internal/domain/match"
	"github.com/matchpulse/betting-analysis/internal/platform/logging"
	"github.com/matchpulse/betting-analysis/internal/platform/random"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL:  server.URL,
		APIKey:   "test-key",
		Timeout:  2 * time.Second,
		Logger:   logging.NewNop(),
		Random:   random.NewSeeded(11),
		Location: time.UTC,
	})
}

func fixtureJSON(id int, home, away, league, short, date string) string {
	return fmt.Sprintf(`{
		"fixture": {"id": %d, "date": %q, "status": {"short": %q}},
		"league": {"name": %q},
		"teams": {"home": {"name": %q}, "away": {"name": %q}}
	}`, id, date, short, league, home, away)
}

func TestFetchMatchesWithoutKeySkipsNetwork(t *testing.T) {
	t.Parallel()

	called := false
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Logger:  logging.NewNop(),
		Random:  random.NewSeeded(1),
	})

	fixtures, err := client.FetchMatches(context.Background(), "2026-03-07", "")
	require.NoError(t, err)
	assert.Nil(t, fixtures)
	assert.False(t, called, "missing key must not hit the network")
}

func TestFetchMatchesNormalizes(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "/v3/fixtures", r.URL.Path)
		assert.Equal(t, "2026-03-07", r.URL.Query().Get("date"))

		fmt.Fprintf(w, `{"response": [%s, %s]}`,
			fixtureJSON(501, "Bayern Munich", "Borussia Dortmund", "Bundesliga", "NS", "2026-03-07T17:30:00+00:00"),
			fixtureJSON(502, "PSG", "Marseille", "Ligue 1", "1H", "2026-03-07T20:00:00+00:00"),
		)
	})

	fixtures, err := client.FetchMatches(context.Background(), "2026-03-07", "")
	require.NoError(t, err)
	require.Len(t, fixtures, 2)

	first := fixtures[0]
	assert.Equal(t, "af_501", first.ID)
	assert.Equal(t, "Bayern Munich", first.HomeTeam)
	assert.Equal(t, "Borussia Dortmund", first.AwayTeam)
	assert.Equal(t, "Bundesliga", first.League)
	assert.Equal(t, match.StatusScheduled, first.Status)
	assert.Equal(t, "17:30", first.Kickoff)
	assert.Equal(t, "2026-03-07", first.Date)
	assert.Equal(t, "api-football", first.Source)
	assert.GreaterOrEqual(t, first.HomeOdds, match.HomeOddsMin)
	assert.LessOrEqual(t, first.HomeOdds, match.HomeOddsMax)

	assert.Equal(t, match.StatusInPlay, fixtures[1].Status)
}

func TestFetchMatchesTruncatesAndFilters(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		body := `{"response": [`
		for i := 0; i < 20; i++ {
			if i > 0 {
				body += ","
			}
			league := "Premier League"
			if i%2 == 1 {
				league = "La Liga"
			}
			body += fixtureJSON(600+i, fmt.Sprintf("Home %d", i), fmt.Sprintf("Away %d", i), league, "NS", "2026-03-07T15:00:00+00:00")
		}
		body += `]}`
		fmt.Fprint(w, body)
	})

	all, err := client.FetchMatches(context.Background(), "2026-03-07", "")
	require.NoError(t, err)
	assert.Len(t, all, maxFixtures)

	filtered, err := client.FetchMatches(context.Background(), "2026-03-07", "premier-league")
	require.NoError(t, err)
	require.NotEmpty(t, filtered)
	for _, fixture := range filtered {
		assert.Equal(t, "Premier League", fixture.League)
	}
}

func TestFetchMatchesUpstreamFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	fixtures, err := client.FetchMatches(context.Background(), "2026-03-07", "")
	require.Error(t, err)
	assert.Nil(t, fixtures)
	assert.True(t, providererr.IsTransient(err))
}

func TestFetchMatchesMalformedPayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"response": "nope"`)
	})

	_, err := client.FetchMatches(context.Background(), "2026-03-07", "")
	require.Error(t, err)
}

func TestMapStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		short string
		want  string
	}{
		{short: "NS", want: match.StatusScheduled},
		{short: "TBD", want: match.StatusScheduled},
		{short: "1H", want: match.StatusInPlay},
		{short: "HT", want: match.StatusInPlay},
		{short: "LIVE", want: match.StatusLive},
		{short: "FT", want: match.StatusScheduled},
		{short: "", want: match.StatusScheduled},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, mapStatus(tc.short), "short=%q", tc.short)
	}
}
