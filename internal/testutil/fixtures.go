package testutil

import (
	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
)

// IntPtr returns a pointer to v, for optional score fields.
func IntPtr(v int) *int { return &v }

// SampleGame returns a final game fixture with the provided id.
func SampleGame(id int) games.GameSummary {
	return games.GameSummary{
		ID:           id,
		Status:       "Final",
		StatusDetail: "Final",
		Venue:        "T-Mobile Park",
		IsFinal:      true,
		Home:         games.TeamSide{ID: 136, Name: "Seattle Mariners", Abbreviation: "SEA", Record: "85-77", Score: IntPtr(4)},
		Away:         games.TeamSide{ID: 117, Name: "Houston Astros", Abbreviation: "HOU", Record: "88-73", Score: IntPtr(2)},
	}
}

// SampleScoreboard builds a ScoreboardResponse with a single sample game.
func SampleScoreboard(date string, id int) games.ScoreboardResponse {
	return games.ScoreboardResponse{
		Date:  date,
		Games: []games.GameSummary{SampleGame(id)},
	}
}

// SampleLeagues returns one-team-per-division standings for both leagues.
func SampleLeagues() []standings.LeagueStandings {
	al := standings.LeagueStandings{
		LeagueID: 103,
		League:   "American League",
		Divisions: []standings.DivisionStanding{
			{
				Label: "AL West",
				Teams: []standings.TeamRecord{
					{TeamID: 136, Name: "Seattle Mariners", Abbreviation: "SEA", Wins: 90, Losses: 72, Pct: 0.556, PctText: ".556", GamesBack: "-", DivisionRank: 1},
				},
			},
		},
		Teams: []standings.TeamRecord{
			{TeamID: 136, Name: "Seattle Mariners", Abbreviation: "SEA", Wins: 90, Losses: 72, Pct: 0.556, PctText: ".556", GamesBack: "-", DivisionRank: 1},
		},
	}
	nl := standings.LeagueStandings{
		LeagueID: 104,
		League:   "National League",
		Divisions: []standings.DivisionStanding{
			{
				Label: "NL West",
				Teams: []standings.TeamRecord{
					{TeamID: 119, Name: "Los Angeles Dodgers", Abbreviation: "LAD", Wins: 98, Losses: 64, Pct: 0.605, PctText: ".605", GamesBack: "-", DivisionRank: 1},
				},
			},
		},
		Teams: []standings.TeamRecord{
			{TeamID: 119, Name: "Los Angeles Dodgers", Abbreviation: "LAD", Wins: 98, Losses: 64, Pct: 0.605, PctText: ".605", GamesBack: "-", DivisionRank: 1},
		},
	}
	return []standings.LeagueStandings{al, nl}
}
