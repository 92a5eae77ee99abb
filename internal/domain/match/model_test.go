package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matchpulse/betting-analysis/internal/platform/random"
)

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusScheduled, NormalizeStatus(""))
	assert.Equal(t, StatusScheduled, NormalizeStatus("  scheduled "))
	assert.Equal(t, StatusLive, NormalizeStatus("live"))
}

func TestIsLiveStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, IsLiveStatus("LIVE"))
	assert.True(t, IsLiveStatus("in_play"))
	assert.True(t, IsLiveStatus("HT"))
	assert.False(t, IsLiveStatus("SCHEDULED"))
	assert.False(t, IsLiveStatus("INFO"))
}

func TestMatchesLeagueFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		league string
		filter string
		want   bool
	}{
		{name: "empty filter passes", league: "Premier League", filter: "", want: true},
		{name: "alias match", league: "Premier League", filter: "premier-league", want: true},
		{name: "alias secondary fragment", league: "Primera Division", filter: "la-liga", want: true},
		{name: "alias mismatch", league: "Serie A", filter: "premier-league", want: false},
		{name: "unknown slug substring", league: "Eredivisie", filter: "eredivisie", want: true},
		{name: "unknown slug with dashes", league: "Scottish Premiership", filter: "scottish-premiership", want: true},
		{name: "unknown slug mismatch", league: "Serie A", filter: "eredivisie", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MatchesLeagueFilter(tc.league, tc.filter))
		})
	}
}

func TestSynthesizeOddsBounds(t *testing.T) {
	t.Parallel()

	rng := random.NewSeeded(8)
	for trial := 0; trial < 5000; trial++ {
		home, draw, away := SynthesizeOdds(rng)
		assert.GreaterOrEqual(t, home, HomeOddsMin)
		assert.LessOrEqual(t, home, HomeOddsMax)
		assert.GreaterOrEqual(t, draw, DrawOddsMin)
		assert.LessOrEqual(t, draw, DrawOddsMax)
		assert.GreaterOrEqual(t, away, AwayOddsMin)
		assert.LessOrEqual(t, away, AwayOddsMax)
	}
}
