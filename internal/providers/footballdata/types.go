package footballdata

type matchesResponse struct {
	Matches []matchResponse `json:"matches"`
}

type matchResponse struct {
	ID          int                 `json:"id"`
	UTCDate     string              `json:"utcDate"`
	Status      string              `json:"status"`
	Minute      int                 `json:"minute"`
	Competition competitionResponse `json:"competition"`
	HomeTeam    teamResponse        `json:"homeTeam"`
	AwayTeam    teamResponse        `json:"awayTeam"`
	Score       scoreResponse       `json:"score"`
}

type competitionResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type teamResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
}

type scoreResponse struct {
	Winner   string       `json:"winner"`
	FullTime scorePairing `json:"fullTime"`
	HalfTime scorePairing `json:"halfTime"`
}

type scorePairing struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type teamsResponse struct {
	Count int            `json:"count"`
	Teams []teamResponse `json:"teams"`
}
