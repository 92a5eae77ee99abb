package rating

import (
	"strings"

	"github.com/matchpulse/betting-analysis/internal/platform/random"
)

const (
	DefaultMin = 60
	DefaultMax = 75
)

// eliteRatings and goodRatings are hand-authored priors, not learned values.
// Lookups are case-insensitive on the trimmed display name.
var eliteRatings = map[string]int{
	"real madrid":         95,
	"manchester city":     94,
	"bayern munich":       93,
	"liverpool":           92,
	"barcelona":           91,
	"arsenal":             90,
	"inter milan":         89,
	"paris saint-germain": 89,
	"bayer leverkusen":    87,
	"atletico madrid":     86,
	"borussia dortmund":   85,
}

var goodRatings = map[string]int{
	"chelsea":           83,
	"manchester united": 82,
	"tottenham hotspur": 82,
	"tottenham":         82,
	"ac milan":          82,
	"juventus":          81,
	"napoli":            81,
	"newcastle united":  80,
	"aston villa":       79,
	"rb leipzig":        79,
	"roma":              78,
	"sevilla":           77,
	"lazio":             76,
	"west ham united":   75,
}

// Model maps a team display name to an integer strength score.
type Model struct {
	rng random.Source
}

func NewModel(rng random.Source) *Model {
	return &Model{rng: rng}
}

// RatingOf returns the team's rating: elite table first, then good table,
// otherwise a uniform draw from the default range. The random branch makes
// unrated teams reproducible only under an injected seeded source.
func (m *Model) RatingOf(teamName string) int {
	key := strings.ToLower(strings.TrimSpace(teamName))
	if value, ok := eliteRatings[key]; ok {
		return value
	}
	if value, ok := goodRatings[key]; ok {
		return value
	}
	return DefaultMin + m.rng.IntN(DefaultMax-DefaultMin+1)
}
