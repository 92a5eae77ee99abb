package analysis

import "github.com/matchpulse/betting-analysis/internal/domain/teamstats"

// Bet type categories.
const (
	TypeStrongFavorite = "Strong Favorite"
	TypeFormPick       = "Form Pick"
	TypeGoalsMarket    = "Goals Market"
	TypeConservative   = "Conservative"
)

// Market labels for the closed set of supported bets. Win bets are rendered
// as "<Team> Win".
const (
	MarketBTTS    = "Both Teams to Score"
	MarketOver25  = "Over 2.5 Goals"
	MarketUnder25 = "Under 2.5 Goals"
)

// Recommendation is the scored bet produced by the engine.
type Recommendation struct {
	Bet        string  `json:"bet"`
	Odds       float64 `json:"odds"`
	Confidence int     `json:"confidence"`
	Type       string  `json:"type"`
	Reasoning  string  `json:"reasoning"`
}

// Report bundles the recommendation with the statistics it was derived from
// and the explanatory factor lists. Reports are request-scoped and never
// persisted.
type Report struct {
	HomeTeam       string              `json:"homeTeam"`
	AwayTeam       string              `json:"awayTeam"`
	HomeStats      teamstats.TeamStats `json:"homeStats"`
	AwayStats      teamstats.TeamStats `json:"awayStats"`
	Recommendation Recommendation      `json:"recommendation"`
	KeyFactors     []string            `json:"keyFactors"`
	RiskFactors    []string            `json:"riskFactors"`
}
