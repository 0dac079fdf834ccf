package providers

import (
	"context"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
)

// ScheduleProvider fetches and normalizes one day's games.
// The date, when provided, is a YYYY-MM-DD string; providers interpret an
// empty date as "today" in their configured timezone.
type ScheduleProvider interface {
	FetchScoreboard(ctx context.Context, date string) (games.ScoreboardResponse, error)
}

// StandingsProvider fetches normalized league standings for a season.
// An empty season means the current season. Leagues, divisions, and teams
// all preserve upstream order.
type StandingsProvider interface {
	FetchStandings(ctx context.Context, season string) ([]standings.LeagueStandings, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScheduleProvider
	StandingsProvider
}
