package fixture

import (
	"context"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/timeutil"
)

// Provider returns static data useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

func intPtr(v int) *int { return &v }

// FetchScoreboard returns a deterministic pair of example games.
func (p *Provider) FetchScoreboard(ctx context.Context, date string) (games.ScoreboardResponse, error) {
	_ = ctx

	if date == "" {
		date = timeutil.FormatDate(p.now().UTC())
	}
	start, err := timeutil.ParseDate(date)
	if err != nil {
		start = p.now().UTC().Truncate(24 * time.Hour)
		date = timeutil.FormatDate(start)
	}

	list := []games.GameSummary{
		{
			ID:           1001,
			StartTime:    start.Add(17 * time.Hour).Format(time.RFC3339),
			Status:       "In Progress",
			StatusDetail: "In Progress – Top 5",
			Venue:        "Fenway Park",
			Inning:       5,
			IsTopInning:  true,
			IsLive:       true,
			Home:         games.TeamSide{ID: 111, Name: "Boston Red Sox", Abbreviation: "BOS", Record: "52-37", Score: intPtr(3)},
			Away:         games.TeamSide{ID: 147, Name: "New York Yankees", Abbreviation: "NYY", Record: "55-34", Score: intPtr(2)},
		},
		{
			ID:        1002,
			StartTime: start.Add(20 * time.Hour).Format(time.RFC3339),
			Status:    "Scheduled",
			StatusDetail: "Scheduled",
			Venue:     "Dodger Stadium",
			Home:      games.TeamSide{ID: 119, Name: "Los Angeles Dodgers", Abbreviation: "LAD", Record: "58-31"},
			Away:      games.TeamSide{ID: 137, Name: "San Francisco Giants", Abbreviation: "SF", Record: "44-45"},
		},
	}

	return games.NewScoreboardResponse(date, list), nil
}

// FetchStandings returns a deterministic single-division standings set.
func (p *Provider) FetchStandings(ctx context.Context, season string) ([]standings.LeagueStandings, error) {
	_ = ctx
	if season == "" {
		season = timeutil.SeasonYear(p.now().UTC())
	}
	_ = season

	east := []standings.TeamRecord{
		{TeamID: 147, Name: "New York Yankees", Abbreviation: "NYY", Wins: 55, Losses: 34, Pct: 0.618, PctText: ".618", GamesBack: "-", DivisionRank: 1},
		{TeamID: 111, Name: "Boston Red Sox", Abbreviation: "BOS", Wins: 52, Losses: 37, Pct: 0.584, PctText: ".584", GamesBack: "3.0", DivisionRank: 2},
	}

	return []standings.LeagueStandings{
		{
			LeagueID:  103,
			League:    "AL",
			Divisions: []standings.DivisionStanding{{Label: "AL East", Teams: east}},
			Teams:     east,
		},
	}, nil
}
