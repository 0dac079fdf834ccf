package statsapi

import "time"

const (
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/New_York"

	sportID         = "1"
	leagueIDs       = "103,104"
	scheduleHydrate = "team,linescore"
	standingsTypes  = "regularSeason"

	americanLeagueID = 103
	nationalLeagueID = 104
)
