package match

import "strings"

const (
	StatusScheduled = "SCHEDULED"
	StatusTimed     = "TIMED"
	StatusInPlay    = "IN_PLAY"
	StatusLive      = "LIVE"
	StatusInfo      = "INFO"
)

// Odds synthesis bounds used whenever a provider does not carry real prices.
// Each outcome is drawn independently; the book is intentionally not balanced.
const (
	HomeOddsMin = 1.50
	HomeOddsMax = 3.50
	DrawOddsMin = 3.00
	DrawOddsMax = 4.00
	AwayOddsMin = 2.00
	AwayOddsMax = 4.50
)

// Fixture is one scheduled or live match in canonical form. Instances are
// request-scoped and never mutated after a fetch returns them.
type Fixture struct {
	ID       string  `json:"id"`
	HomeTeam string  `json:"homeTeam"`
	AwayTeam string  `json:"awayTeam"`
	League   string  `json:"league"`
	Kickoff  string  `json:"time"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	HomeOdds float64 `json:"homeOdds"`
	DrawOdds float64 `json:"drawOdds"`
	AwayOdds float64 `json:"awayOdds"`
	Source   string  `json:"source"`
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusLive, StatusInPlay, "HT", "1H", "2H", "ET", "PAUSED":
		return true
	default:
		return false
	}
}

// LeagueAliases maps the filter slugs accepted by the API to fragments of the
// league display names the providers use. Unknown slugs fall back to a raw
// substring match against the display name.
var LeagueAliases = map[string][]string{
	"premier-league":   {"premier league"},
	"la-liga":          {"la liga", "primera division"},
	"serie-a":          {"serie a"},
	"bundesliga":       {"bundesliga"},
	"champions-league": {"champions league"},
	"ligue-1":          {"ligue 1"},
}

// MatchesLeagueFilter reports whether a league display name passes the given
// filter slug. An empty filter passes everything.
func MatchesLeagueFilter(leagueName, filter string) bool {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return true
	}

	name := strings.ToLower(strings.TrimSpace(leagueName))
	if fragments, ok := LeagueAliases[filter]; ok {
		for _, fragment := range fragments {
			if strings.Contains(name, fragment) {
				return true
			}
		}
		return false
	}

	return strings.Contains(name, strings.ReplaceAll(filter, "-", " ")) ||
		strings.Contains(name, filter)
}
