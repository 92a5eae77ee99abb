package footballdata

type matchesEnvelope struct {
	Matches []matchItem `json:"matches"`
}

type matchItem struct {
	ID          int64           `json:"id"`
	UTCDate     string          `json:"utcDate"`
	Status      string          `json:"status"`
	HomeTeam    participantItem `json:"homeTeam"`
	AwayTeam    participantItem `json:"awayTeam"`
	Competition competitionItem `json:"competition"`
}

type participantItem struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

func (p participantItem) displayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ShortName
}

type competitionItem struct {
	Name string `json:"name"`
}
