package memory

import (
	"github.com/matchpulse/betting-analysis/internal/domain/league"
	"github.com/matchpulse/betting-analysis/internal/domain/team"
)

const (
	LeagueIDPremierLeague   = "premier-league"
	LeagueIDLaLiga          = "la-liga"
	LeagueIDSerieA          = "serie-a"
	LeagueIDBundesliga      = "bundesliga"
	LeagueIDChampionsLeague = "champions-league"
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDPremierLeague, Name: "Premier League", Country: "England", Slug: LeagueIDPremierLeague},
		{ID: LeagueIDLaLiga, Name: "La Liga", Country: "Spain", Slug: LeagueIDLaLiga},
		{ID: LeagueIDSerieA, Name: "Serie A", Country: "Italy", Slug: LeagueIDSerieA},
		{ID: LeagueIDBundesliga, Name: "Bundesliga", Country: "Germany", Slug: LeagueIDBundesliga},
		{ID: LeagueIDChampionsLeague, Name: "Champions League", Country: "Europe", Slug: LeagueIDChampionsLeague},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "eng-ars", LeagueID: LeagueIDPremierLeague, Name: "Arsenal"},
		{ID: "eng-mci", LeagueID: LeagueIDPremierLeague, Name: "Manchester City"},
		{ID: "eng-liv", LeagueID: LeagueIDPremierLeague, Name: "Liverpool"},
		{ID: "eng-che", LeagueID: LeagueIDPremierLeague, Name: "Chelsea"},
		{ID: "esp-rma", LeagueID: LeagueIDLaLiga, Name: "Real Madrid"},
		{ID: "esp-bar", LeagueID: LeagueIDLaLiga, Name: "Barcelona"},
		{ID: "esp-atm", LeagueID: LeagueIDLaLiga, Name: "Atletico Madrid"},
		{ID: "esp-sev", LeagueID: LeagueIDLaLiga, Name: "Sevilla"},
		{ID: "ita-int", LeagueID: LeagueIDSerieA, Name: "Inter Milan"},
		{ID: "ita-acm", LeagueID: LeagueIDSerieA, Name: "AC Milan"},
		{ID: "ita-juv", LeagueID: LeagueIDSerieA, Name: "Juventus"},
		{ID: "ita-nap", LeagueID: LeagueIDSerieA, Name: "Napoli"},
		{ID: "ger-bay", LeagueID: LeagueIDBundesliga, Name: "Bayern Munich"},
		{ID: "ger-bvb", LeagueID: LeagueIDBundesliga, Name: "Borussia Dortmund"},
		{ID: "ger-rbl", LeagueID: LeagueIDBundesliga, Name: "RB Leipzig"},
		{ID: "ucl-psg", LeagueID: LeagueIDChampionsLeague, Name: "Paris Saint-Germain"},
		{ID: "ucl-lev", LeagueID: LeagueIDChampionsLeague, Name: "Bayer Leverkusen"},
		{ID: "ucl-tot", LeagueID: LeagueIDChampionsLeague, Name: "Tottenham"},
	}
}
