package apifootball

type fixturesEnvelope struct {
	Response []fixtureItem `json:"response"`
}

type fixtureItem struct {
	Fixture fixtureCore `json:"fixture"`
	League  leagueItem  `json:"league"`
	Teams   teamsItem   `json:"teams"`
}

type fixtureCore struct {
	ID     int64       `json:"id"`
	Date   string      `json:"date"`
	Status fixtureStat `json:"status"`
}

type fixtureStat struct {
	Short string `json:"short"`
}

type leagueItem struct {
	Name string `json:"name"`
}

type teamsItem struct {
	Home teamItem `json:"home"`
	Away teamItem `json:"away"`
}

type teamItem struct {
	Name string `json:"name"`
}
