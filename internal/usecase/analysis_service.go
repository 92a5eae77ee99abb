package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/matchpulse/betting-analysis/internal/domain/analysis"
	"github.com/matchpulse/betting-analysis/internal/domain/match"
	"github.com/matchpulse/betting-analysis/internal/platform/logging"
	"github.com/matchpulse/betting-analysis/internal/platform/random"
)

const (
	// homeAdvantage is added to the home side's confidence before comparing
	// strengths. Changing it shifts every strong-favorite threshold.
	homeAdvantage = 7

	strongFavoriteGap = 25
	formPickMinWins   = 4
	formPickMaxWins   = 1
	goalsGapThreshold = 0.7
	leakyDefenseLine  = 1.2

	defaultBatchWorkers = 8
)

// AnalysisService turns two team names into a scored bet recommendation. It
// never fails for string inputs; unknown teams simply get derived profiles.
type AnalysisService struct {
	stats        *StatsService
	matches      *MatchService
	rng          random.Source
	batchWorkers int
	logger       *logging.Logger
}

func NewAnalysisService(
	stats *StatsService,
	matches *MatchService,
	rng random.Source,
	batchWorkers int,
	logger *logging.Logger,
) *AnalysisService {
	if rng == nil {
		rng = random.NewLocked()
	}
	if batchWorkers < 1 {
		batchWorkers = defaultBatchWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AnalysisService{
		stats:        stats,
		matches:      matches,
		rng:          rng,
		batchWorkers: batchWorkers,
		logger:       logger,
	}
}

// Analyze produces the report for one pairing. The decision ladder below is
// order-dependent: rules are evaluated in this exact sequence and the first
// matching rule wins.
func (s *AnalysisService) Analyze(ctx context.Context, homeTeam, awayTeam string) analysis.Report {
	ctx, span := startUsecaseSpan(ctx, "AnalysisService.Analyze")
	defer span.End()

	homeStats := s.stats.GetStats(ctx, homeTeam)
	awayStats := s.stats.GetStats(ctx, awayTeam)

	homeStrength := homeStats.Confidence + homeAdvantage
	awayStrength := awayStats.Confidence
	strengthDiff := homeStrength - awayStrength
	if strengthDiff < 0 {
		strengthDiff = -strengthDiff
	}

	homeWins := homeStats.Wins()
	awayWins := awayStats.Wins()
	goalsGap := homeStats.GoalsFor - awayStats.GoalsFor

	var rec analysis.Recommendation
	switch {
	// Rule 1: a one-sided strength gap points at the favorite's win market.
	case strengthDiff > strongFavoriteGap:
		if homeStrength > awayStrength {
			rec = analysis.Recommendation{
				Bet:        homeTeam + " Win",
				Odds:       s.drawOdds(1.40, 2.20),
				Confidence: minInt(92, 62+strengthDiff/2),
				Type:       analysis.TypeStrongFavorite,
			}
		} else {
			rec = analysis.Recommendation{
				Bet:        awayTeam + " Win",
				Odds:       s.drawOdds(1.80, 2.80),
				Confidence: minInt(85, 58+strengthDiff/3),
				Type:       analysis.TypeStrongFavorite,
			}
		}

	// Rule 2: a stark form split overrides raw strength.
	case homeWins >= formPickMinWins && awayWins <= formPickMaxWins:
		rec = analysis.Recommendation{
			Bet:        homeTeam + " Win",
			Odds:       s.drawOdds(1.60, 2.60),
			Confidence: 72,
			Type:       analysis.TypeFormPick,
		}
	case awayWins >= formPickMinWins && homeWins <= formPickMaxWins:
		rec = analysis.Recommendation{
			Bet:        awayTeam + " Win",
			Odds:       s.drawOdds(1.60, 2.60),
			Confidence: 68,
			Type:       analysis.TypeFormPick,
		}

	// Rule 3: a wide scoring gap points at a goals market.
	case math.Abs(goalsGap) > goalsGapThreshold:
		if homeStats.GoalsAgainst > leakyDefenseLine && awayStats.GoalsAgainst > leakyDefenseLine {
			rec = analysis.Recommendation{
				Bet:        analysis.MarketBTTS,
				Odds:       s.drawOdds(1.60, 2.10),
				Confidence: 64,
				Type:       analysis.TypeGoalsMarket,
			}
		} else {
			rec = analysis.Recommendation{
				Bet:        analysis.MarketOver25,
				Odds:       s.drawOdds(1.70, 2.30),
				Confidence: 62,
				Type:       analysis.TypeGoalsMarket,
			}
		}

	// Rule 4: nothing stands out, take the low-variance market.
	default:
		rec = analysis.Recommendation{
			Bet:        analysis.MarketUnder25,
			Odds:       s.drawOdds(1.70, 2.40),
			Confidence: 55,
			Type:       analysis.TypeConservative,
		}
	}

	rec.Reasoning = buildReasoning(homeTeam, awayTeam, homeStats, awayStats, rec)

	return analysis.Report{
		HomeTeam:       homeTeam,
		AwayTeam:       awayTeam,
		HomeStats:      homeStats,
		AwayStats:      awayStats,
		Recommendation: rec,
		KeyFactors:     keyFactors(homeTeam, awayTeam, homeStats, awayStats),
		RiskFactors:    riskFactors(homeStats, awayStats, strengthDiff),
	}
}

// DayAnalysis pairs a fixture with its report.
type DayAnalysis struct {
	Fixture match.Fixture   `json:"fixture"`
	Report  analysis.Report `json:"report"`
}

// AnalyzeDay analyzes every playable fixture of a date on a bounded worker
// pool. Informational placeholders are skipped.
func (s *AnalysisService) AnalyzeDay(ctx context.Context, date, leagueFilter string) ([]DayAnalysis, error) {
	ctx, span := startUsecaseSpan(ctx, "AnalysisService.AnalyzeDay")
	defer span.End()

	fixtures := s.matches.GetMatches(ctx, date, leagueFilter)

	pool, err := ants.NewPool(s.batchWorkers)
	if err != nil {
		return nil, fmt.Errorf("create analysis worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]DayAnalysis, len(fixtures))
	analyzed := make([]bool, len(fixtures))

	var wg sync.WaitGroup
	for i, fixture := range fixtures {
		if fixture.Status == match.StatusInfo || fixture.HomeTeam == "" || fixture.AwayTeam == "" {
			continue
		}

		i, fixture := i, fixture
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = DayAnalysis{
				Fixture: fixture,
				Report:  s.Analyze(ctx, fixture.HomeTeam, fixture.AwayTeam),
			}
			analyzed[i] = true
		}
		if submitErr := pool.Submit(task); submitErr != nil {
			task()
		}
	}
	wg.Wait()

	out := make([]DayAnalysis, 0, len(fixtures))
	for i := range results {
		if analyzed[i] {
			out = append(out, results[i])
		}
	}

	s.logger.InfoContext(ctx, "day analyzed",
		"date", date,
		"fixtures", len(fixtures),
		"analyzed", len(out),
	)
	return out, nil
}

func (s *AnalysisService) drawOdds(min, max float64) float64 {
	return match.RoundOdds(random.Between(s.rng, min, max))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
