package match

import (
	"math"

	"github.com/matchpulse/betting-analysis/internal/platform/random"
)

// SynthesizeOdds draws a full 1X2 price set within the documented bounds.
// Each outcome is an independent draw.
func SynthesizeOdds(src random.Source) (home, draw, away float64) {
	home = RoundOdds(random.Between(src, HomeOddsMin, HomeOddsMax))
	draw = RoundOdds(random.Between(src, DrawOddsMin, DrawOddsMax))
	away = RoundOdds(random.Between(src, AwayOddsMin, AwayOddsMax))
	return home, draw, away
}

func RoundOdds(value float64) float64 {
	return math.Round(value*100) / 100
}
