package statsapi

const providerName = "statsapi"

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk       int               `json:"gamePk"`
	GameDate     string            `json:"gameDate"`
	GameNumber   int               `json:"gameNumber"`
	DoubleHeader string            `json:"doubleHeader"`
	Status       statusResponse    `json:"status"`
	Venue        venueResponse     `json:"venue"`
	Teams        gameTeams         `json:"teams"`
	Linescore    linescoreResponse `json:"linescore"`
}

type statusResponse struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type venueResponse struct {
	Name string `json:"name"`
}

type gameTeams struct {
	Home gameTeam `json:"home"`
	Away gameTeam `json:"away"`
}

type gameTeam struct {
	Score        *int                 `json:"score"`
	LeagueRecord leagueRecordResponse `json:"leagueRecord"`
	Team         teamResponse         `json:"team"`
}

type leagueRecordResponse struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	TeamName     string `json:"teamName"`
}

type linescoreResponse struct {
	CurrentInning int            `json:"currentInning"`
	IsTopInning   bool           `json:"isTopInning"`
	Teams         linescoreTeams `json:"teams"`
}

type linescoreTeams struct {
	Home linescoreSide `json:"home"`
	Away linescoreSide `json:"away"`
}

type linescoreSide struct {
	Runs *int `json:"runs"`
}

type standingsResponse struct {
	Records []recordGroup `json:"records"`
}

type recordGroup struct {
	Division    divisionResponse     `json:"division"`
	League      leagueRef            `json:"league"`
	TeamRecords []teamRecordResponse `json:"teamRecords"`
}

type divisionResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	NameShort string `json:"nameShort"`
}

type leagueRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type teamRecordResponse struct {
	Team              teamResponse `json:"team"`
	Wins              int          `json:"wins"`
	Losses            int          `json:"losses"`
	WinningPercentage string       `json:"winningPercentage"`
	GamesBack         string       `json:"gamesBack"`
	DivisionRank      string       `json:"divisionRank"`
	DivisionChamp     bool         `json:"divisionChamp"`
	Clinched          bool         `json:"clinched"`
	HasWildcard       bool         `json:"hasWildcard"`
	ClinchIndicator   string       `json:"clinchIndicator"`
}
