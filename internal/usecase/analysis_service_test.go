package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchpulse/betting-analysis/internal/domain/analysis"
	"github.com/matchpulse/betting-analysis/internal/domain/match"
	"github.com/matchpulse/betting-analysis/internal/domain/rating"
	"github.com/matchpulse/betting-analysis/internal/platform/clock"
	"github.com/matchpulse/betting-analysis/internal/platform/logging"
	"github.com/matchpulse/betting-analysis/internal/platform/random"
)

func newAnalysisService(seed uint64, providers []match.Provider) *AnalysisService {
	rng := random.NewSeeded(seed)
	clk := clock.NewFixed(time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC))
	stats := NewStatsService(rating.NewModel(rng), rng, clk, time.Minute, 200, logging.NewNop())
	matches := newMatchService(providers, nil)
	return NewAnalysisService(stats, matches, rng, 4, logging.NewNop())
}

func TestAnalyzeRealMadridAlwaysStrongFavorite(t *testing.T) {
	t.Parallel()

	// An elite home side against an unrated opponent clears the strength gap
	// on every draw: min home strength 99 vs max opponent confidence 72.
	for seed := uint64(1); seed <= 100; seed++ {
		service := newAnalysisService(seed, nil)
		report := service.Analyze(context.Background(), "Real Madrid", "Middlesbrough")

		require.Equal(t, analysis.TypeStrongFavorite, report.Recommendation.Type, "seed=%d", seed)
		require.Equal(t, "Real Madrid Win", report.Recommendation.Bet, "seed=%d", seed)
		assert.LessOrEqual(t, report.Recommendation.Confidence, 92)
		assert.GreaterOrEqual(t, report.Recommendation.Odds, 1.40)
		assert.LessOrEqual(t, report.Recommendation.Odds, 2.20)
	}
}

func TestAnalyzeOddsWithinMarketBounds(t *testing.T) {
	t.Parallel()

	bounds := map[string][2]float64{
		analysis.TypeFormPick:     {1.60, 2.60},
		analysis.TypeConservative: {1.70, 2.40},
	}
	marketBounds := map[string][2]float64{
		analysis.MarketBTTS:   {1.60, 2.10},
		analysis.MarketOver25: {1.70, 2.30},
	}

	pairings := [][2]string{
		{"Real Madrid", "Middlesbrough"},
		{"Middlesbrough", "Real Madrid"},
		{"Chelsea", "Juventus"},
		{"Coventry City", "Luton Town"},
		{"Arsenal", "Barcelona"},
	}

	for seed := uint64(1); seed <= 200; seed++ {
		service := newAnalysisService(seed, nil)
		for _, pairing := range pairings {
			report := service.Analyze(context.Background(), pairing[0], pairing[1])
			rec := report.Recommendation

			if rec.Type == analysis.TypeStrongFavorite {
				if strings.HasPrefix(rec.Bet, pairing[0]) {
					assert.GreaterOrEqual(t, rec.Odds, 1.40)
					assert.LessOrEqual(t, rec.Odds, 2.20)
					assert.LessOrEqual(t, rec.Confidence, 92)
				} else {
					assert.GreaterOrEqual(t, rec.Odds, 1.80)
					assert.LessOrEqual(t, rec.Odds, 2.80)
					assert.LessOrEqual(t, rec.Confidence, 85)
				}
				continue
			}
			if want, ok := bounds[rec.Type]; ok {
				assert.GreaterOrEqual(t, rec.Odds, want[0], "type=%s", rec.Type)
				assert.LessOrEqual(t, rec.Odds, want[1], "type=%s", rec.Type)
			}
			if want, ok := marketBounds[rec.Bet]; ok {
				assert.GreaterOrEqual(t, rec.Odds, want[0], "bet=%s", rec.Bet)
				assert.LessOrEqual(t, rec.Odds, want[1], "bet=%s", rec.Bet)
			}
		}
	}
}

func TestAnalyzeReasoningIsProse(t *testing.T) {
	t.Parallel()

	service := newAnalysisService(9, nil)
	pairings := [][2]string{
		{"Real Madrid", "Middlesbrough"},
		{"Coventry City", "Luton Town"},
		{"Arsenal", "Chelsea"},
	}

	for _, pairing := range pairings {
		report := service.Analyze(context.Background(), pairing[0], pairing[1])
		reasoning := report.Recommendation.Reasoning

		require.NotEmpty(t, reasoning)
		assert.True(t, strings.HasSuffix(reasoning, "."), "reasoning must be period-terminated: %q", reasoning)
		assert.Contains(t, reasoning, pairing[0])
	}
}

func TestAnalyzeReportFactors(t *testing.T) {
	t.Parallel()

	service := newAnalysisService(3, nil)
	report := service.Analyze(context.Background(), "Arsenal", "Chelsea")

	assert.Equal(t, "Arsenal", report.HomeTeam)
	assert.Equal(t, "Chelsea", report.AwayTeam)
	assert.NotEmpty(t, report.KeyFactors)
	assert.NotEmpty(t, report.RiskFactors)
	assert.Equal(t, "Arsenal", report.HomeStats.Team)
	assert.Equal(t, "Chelsea", report.AwayStats.Team)
}

func TestAnalyzeNeverFails(t *testing.T) {
	t.Parallel()

	service := newAnalysisService(17, nil)
	report := service.Analyze(context.Background(), "", "")

	assert.NotEmpty(t, report.Recommendation.Bet)
	assert.NotEmpty(t, report.Recommendation.Reasoning)
}

func TestAnalyzeDay(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{name: "stub", fixtures: []match.Fixture{
		{ID: "s_1", HomeTeam: "Arsenal", AwayTeam: "Chelsea", League: "Premier League", Status: match.StatusScheduled, Source: "stub"},
		{ID: "s_2", HomeTeam: "Real Madrid", AwayTeam: "Barcelona", League: "La Liga", Status: match.StatusScheduled, Source: "stub"},
		{ID: "s_3", HomeTeam: "No fixtures scheduled", AwayTeam: "", League: "Info", Status: match.StatusInfo, Source: "stub"},
	}}

	service := newAnalysisService(21, []match.Provider{provider})
	results, err := service.AnalyzeDay(context.Background(), saturday, "")
	require.NoError(t, err)
	require.Len(t, results, 2, "informational placeholder must be skipped")

	byID := make(map[string]DayAnalysis, len(results))
	for _, result := range results {
		byID[result.Fixture.ID] = result
		assert.NotEmpty(t, result.Report.Recommendation.Bet)
	}
	assert.Contains(t, byID, "s_1")
	assert.Contains(t, byID, "s_2")
}

func TestAnalyzeDaySyntheticFallback(t *testing.T) {
	t.Parallel()

	service := newAnalysisService(33, nil)
	results, err := service.AnalyzeDay(context.Background(), saturday, "")
	require.NoError(t, err)
	assert.NotEmpty(t, results, "synthetic fixtures feed the batch path when providers are down")
}
