package standings

// ClinchSignals enumerates the raw clinch fields upstream may populate.
// Depending on season and timing the source fills in the booleans, the
// single-letter indicator, or both; consumers should reduce them with
// InterpretClinch rather than reading fields directly.
type ClinchSignals struct {
	DivisionChamp   bool
	Clinched        bool
	HasWildcard     bool
	ClinchIndicator string
}

// ClinchFlags is the reduced, unambiguous clinch state for a team.
type ClinchFlags struct {
	Division bool `json:"divisionClinched"`
	Playoff  bool `json:"playoffClinched"`
}

// TeamRecord is one row of a standings table.
type TeamRecord struct {
	TeamID       int         `json:"teamId"`
	Name         string      `json:"name"`
	Abbreviation string      `json:"abbreviation"`
	Wins         int         `json:"wins"`
	Losses       int         `json:"losses"`
	Pct          float64     `json:"-"`
	PctText      string      `json:"pct"`
	GamesBack    string      `json:"gamesBack"`
	DivisionRank int         `json:"divisionRank"`
	Clinch       ClinchFlags `json:"clinch"`
	// WildCard marks the standings-view wild-card badge: clinched a
	// playoff spot without winning the division. Never set together
	// with Clinch.Division.
	WildCard bool `json:"wildCardClinched"`
}

// DivisionStanding is an ordered division table with a short display label.
type DivisionStanding struct {
	Label string       `json:"label"`
	Teams []TeamRecord `json:"teams"`
}

// LeagueStandings groups one league's division tables plus the flat team
// pool used for playoff seeding. Both preserve upstream order.
type LeagueStandings struct {
	LeagueID  int                `json:"leagueId"`
	League    string             `json:"league"`
	Divisions []DivisionStanding `json:"divisions"`
	Teams     []TeamRecord       `json:"-"`
}

// SeededTeam extends a TeamRecord with its playoff seed.
type SeededTeam struct {
	TeamRecord
	Seed             int  `json:"seed"`
	IsDivisionLeader bool `json:"isDivisionLeader"`
	WildCardBerth    bool `json:"wildCardBerth"`
	// GBPlayoffs is games back of the cutoff seed; zero for teams in the
	// field, nil when no cutoff team exists (partial league data).
	GBPlayoffs *float64 `json:"gbPlayoffs"`
}

// LeagueSeeding is one league's seeded postseason picture.
type LeagueSeeding struct {
	LeagueID int          `json:"leagueId"`
	League   string       `json:"league"`
	Seeds    []SeededTeam `json:"seeds"`
}

// StandingsResponse is the payload returned by /standings.
type StandingsResponse struct {
	Season  string            `json:"season"`
	Leagues []LeagueStandings `json:"leagues"`
}

// PostseasonResponse is the payload returned by /postseason.
type PostseasonResponse struct {
	Season  string          `json:"season"`
	Leagues []LeagueSeeding `json:"leagues"`
}
