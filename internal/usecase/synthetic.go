package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/matchpulse/betting-analysis/internal/domain/match"
	"github.com/matchpulse/betting-analysis/internal/platform/clock"
	"github.com/matchpulse/betting-analysis/internal/platform/random"
)

// OffDayPolicy controls what the generator produces on days without a
// scheduled pool: a small blended set or a single informational placeholder.
type OffDayPolicy string

const (
	OffDayPolicyMixed OffDayPolicy = "mixed"
	OffDayPolicyInfo  OffDayPolicy = "info"
)

const (
	syntheticSource      = "synthetic"
	syntheticBaseHour    = 15
	syntheticSlotSpacing = 2 * time.Hour
	syntheticJitterMin   = 30
)

type pairing struct {
	home   string
	away   string
	league string
}

var syntheticPools = map[string][]pairing{
	"premier-league": {
		{home: "Arsenal", away: "Chelsea", league: "Premier League"},
		{home: "Manchester City", away: "Liverpool", league: "Premier League"},
		{home: "Tottenham", away: "Manchester United", league: "Premier League"},
		{home: "Newcastle United", away: "Aston Villa", league: "Premier League"},
	},
	"la-liga": {
		{home: "Real Madrid", away: "Barcelona", league: "La Liga"},
		{home: "Atletico Madrid", away: "Sevilla", league: "La Liga"},
	},
	"serie-a": {
		{home: "Inter Milan", away: "AC Milan", league: "Serie A"},
		{home: "Juventus", away: "Napoli", league: "Serie A"},
		{home: "Roma", away: "Lazio", league: "Serie A"},
	},
	"bundesliga": {
		{home: "Bayern Munich", away: "Borussia Dortmund", league: "Bundesliga"},
		{home: "RB Leipzig", away: "Bayer Leverkusen", league: "Bundesliga"},
	},
	"champions-league": {
		{home: "Real Madrid", away: "Manchester City", league: "Champions League"},
		{home: "Bayern Munich", away: "Liverpool", league: "Champions League"},
		{home: "Inter Milan", away: "Arsenal", league: "Champions League"},
		{home: "Paris Saint-Germain", away: "Barcelona", league: "Champions League"},
	},
}

// domesticPoolKeys fixes the blend order for weekend and mixed sets.
var domesticPoolKeys = []string{"premier-league", "la-liga", "serie-a", "bundesliga"}

// SyntheticGenerator is the terminal fallback of the provider chain. Output
// shape is deterministic for a given date and policy; kickoff jitter and odds
// come from the injected random source.
type SyntheticGenerator struct {
	clk    clock.Clock
	rng    random.Source
	offDay OffDayPolicy
}

func NewSyntheticGenerator(clk clock.Clock, rng random.Source, offDay OffDayPolicy) *SyntheticGenerator {
	if clk == nil {
		clk = clock.System()
	}
	if rng == nil {
		rng = random.NewLocked()
	}
	if offDay != OffDayPolicyInfo {
		offDay = OffDayPolicyMixed
	}
	return &SyntheticGenerator{clk: clk, rng: rng, offDay: offDay}
}

// Generate builds the fixture list for a date. A filter matching a known pool
// key restricts output to that pool regardless of the day of week.
func (g *SyntheticGenerator) Generate(date, leagueFilter string) []match.Fixture {
	day := g.resolveDate(date)

	filter := strings.ToLower(strings.TrimSpace(leagueFilter))
	if pool, ok := syntheticPools[filter]; ok {
		return g.buildFixtures(day, pool)
	}

	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return g.buildFixtures(day, blendDomesticPools(2))
	case time.Wednesday:
		pool := syntheticPools["champions-league"]
		return g.buildFixtures(day, filterPool(pool, leagueFilter))
	default:
		if g.offDay == OffDayPolicyInfo {
			return []match.Fixture{g.infoPlaceholder(day)}
		}
		return g.buildFixtures(day, filterPool(blendDomesticPools(1), leagueFilter))
	}
}

func (g *SyntheticGenerator) resolveDate(date string) time.Time {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return g.clk.Now()
	}
	return parsed
}

func (g *SyntheticGenerator) buildFixtures(day time.Time, pool []pairing) []match.Fixture {
	fixtures := make([]match.Fixture, 0, len(pool))
	base := time.Date(day.Year(), day.Month(), day.Day(), syntheticBaseHour, 0, 0, 0, day.Location())

	for i, p := range pool {
		kickoff := base.
			Add(time.Duration(i) * syntheticSlotSpacing).
			Add(time.Duration(g.rng.IntN(syntheticJitterMin)) * time.Minute)
		homeOdds, drawOdds, awayOdds := match.SynthesizeOdds(g.rng)

		fixtures = append(fixtures, match.Fixture{
			ID:       fmt.Sprintf("gen_%d", i),
			HomeTeam: p.home,
			AwayTeam: p.away,
			League:   p.league,
			Kickoff:  kickoff.Format("15:04"),
			Date:     day.Format("2006-01-02"),
			Status:   match.StatusScheduled,
			HomeOdds: homeOdds,
			DrawOdds: drawOdds,
			AwayOdds: awayOdds,
			Source:   syntheticSource,
		})
	}

	return fixtures
}

func (g *SyntheticGenerator) infoPlaceholder(day time.Time) match.Fixture {
	return match.Fixture{
		ID:       "gen_0",
		HomeTeam: "No fixtures scheduled",
		AwayTeam: "",
		League:   "Info",
		Kickoff:  "00:00",
		Date:     day.Format("2006-01-02"),
		Status:   match.StatusInfo,
		Source:   syntheticSource,
	}
}

// blendDomesticPools takes the first perPool pairings of each domestic league
// in a fixed order.
func blendDomesticPools(perPool int) []pairing {
	out := make([]pairing, 0, perPool*len(domesticPoolKeys))
	for _, key := range domesticPoolKeys {
		pool := syntheticPools[key]
		take := perPool
		if take > len(pool) {
			take = len(pool)
		}
		out = append(out, pool[:take]...)
	}
	return out
}

func filterPool(pool []pairing, leagueFilter string) []pairing {
	if strings.TrimSpace(leagueFilter) == "" {
		return pool
	}
	out := make([]pairing, 0, len(pool))
	for _, p := range pool {
		if match.MatchesLeagueFilter(p.league, leagueFilter) {
			out = append(out, p)
		}
	}
	return out
}
