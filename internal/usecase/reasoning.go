package usecase

import (
	"fmt"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/matchpulse/betting-analysis/internal/domain/analysis"
	"github.com/matchpulse/betting-analysis/internal/domain/teamstats"
)

// buildReasoning renders the recommendation's explanatory prose: form
// tallies, the rating gap, the scoring differential, and the chosen market
// family, joined into period-terminated sentences.
func buildReasoning(homeTeam, awayTeam string, home, away teamstats.TeamStats, rec analysis.Recommendation) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "%s have won %d of their last %d, %s have won %d.",
		homeTeam, home.Wins(), teamstats.FormLength, awayTeam, away.Wins())

	ratingGap := home.Rating - away.Rating
	switch {
	case ratingGap > 10:
		_, _ = fmt.Fprintf(buf, " %s are rated %d points above %s.", homeTeam, ratingGap, awayTeam)
	case ratingGap < -10:
		_, _ = fmt.Fprintf(buf, " %s are rated %d points above %s.", awayTeam, -ratingGap, homeTeam)
	default:
		_, _ = fmt.Fprintf(buf, " The sides are rated within %d points of each other.", absInt(ratingGap))
	}

	goalsGap := home.GoalsFor - away.GoalsFor
	if goalsGap > 0 {
		_, _ = fmt.Fprintf(buf, " %s average %.2f goals per game to %.2f.", homeTeam, home.GoalsFor, away.GoalsFor)
	} else {
		_, _ = fmt.Fprintf(buf, " %s average %.2f goals per game to %.2f.", awayTeam, away.GoalsFor, home.GoalsFor)
	}

	switch rec.Type {
	case analysis.TypeStrongFavorite:
		_, _ = fmt.Fprintf(buf, " The strength gap is wide enough to back the favorite outright.")
	case analysis.TypeFormPick:
		_, _ = fmt.Fprintf(buf, " Current form is one-sided enough to back the in-form side.")
	case analysis.TypeGoalsMarket:
		_, _ = fmt.Fprintf(buf, " The attacking mismatch points at a goals market rather than a result.")
	default:
		_, _ = fmt.Fprintf(buf, " Nothing separates the sides, so the low-variance market is preferred.")
	}

	return buf.String()
}

func keyFactors(homeTeam, awayTeam string, home, away teamstats.TeamStats) []string {
	return []string{
		fmt.Sprintf("%s rating %d vs %s rating %d", homeTeam, home.Rating, awayTeam, away.Rating),
		fmt.Sprintf("%s recent form %s", homeTeam, strings.Join(home.RecentForm, "")),
		fmt.Sprintf("%s recent form %s", awayTeam, strings.Join(away.RecentForm, "")),
		fmt.Sprintf("Home advantage worth %d confidence points", homeAdvantage),
	}
}

func riskFactors(home, away teamstats.TeamStats, strengthDiff int) []string {
	factors := make([]string, 0, 3)
	if strengthDiff <= 10 {
		factors = append(factors, "Teams are closely matched")
	}
	if home.GoalsAgainst > leakyDefenseLine && away.GoalsAgainst > leakyDefenseLine {
		factors = append(factors, "Both defenses concede freely")
	}
	if home.Wins() <= 1 && away.Wins() <= 1 {
		factors = append(factors, "Neither side arrives in form")
	}
	factors = append(factors, "Odds are model estimates, not market prices")
	return factors
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
