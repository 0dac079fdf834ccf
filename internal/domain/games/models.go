package games

// TeamSide is one side (home or away) of a game.
type TeamSide struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Record       string `json:"record,omitempty"`
	// Score is nil until the team has batted; never coerced to zero.
	Score *int `json:"score"`
}

// GameSummary is the flat game shape exposed to the dashboard.
type GameSummary struct {
	ID           int      `json:"id"`
	StartTime    string   `json:"startTime"`
	Status       string   `json:"status"`
	StatusDetail string   `json:"statusDetail"`
	Venue        string   `json:"venue,omitempty"`
	DoubleHeader bool     `json:"doubleHeader,omitempty"`
	GameNumber   int      `json:"gameNumber,omitempty"`
	Inning       int      `json:"inning,omitempty"`
	IsTopInning  bool     `json:"isTopInning,omitempty"`
	IsFinal      bool     `json:"isFinal"`
	IsLive       bool     `json:"isLive"`
	Home         TeamSide `json:"home"`
	Away         TeamSide `json:"away"`
}

// ScoreboardResponse is the payload returned by /scoreboard.
type ScoreboardResponse struct {
	Date  string        `json:"date"`
	Games []GameSummary `json:"games"`
}

// NewScoreboardResponse builds a ScoreboardResponse with a non-nil Games slice.
func NewScoreboardResponse(date string, list []GameSummary) ScoreboardResponse {
	if list == nil {
		list = []GameSummary{}
	}
	return ScoreboardResponse{Date: date, Games: list}
}
