package config

import "time"

const (
	envStatsAPIBaseURL  = "STATSAPI_BASE_URL"
	envStatsAPITimezone = "STATSAPI_TIMEZONE"
	envStatsAPITimeout  = "STATSAPI_TIMEOUT"

	defaultStatsAPIBaseURL = "https://statsapi.mlb.com/api/v1"
	// Schedule dates roll over on Eastern time, matching MLB's calendar.
	defaultStatsAPITimezone = "America/New_York"
	defaultStatsAPITimeout  = 10 * time.Second
)

// StatsAPIConfig controls how we talk to the MLB Stats API.
type StatsAPIConfig struct {
	BaseURL  string
	Timezone string
	Timeout  time.Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL:  envOrDefault(envStatsAPIBaseURL, defaultStatsAPIBaseURL),
		Timezone: envOrDefault(envStatsAPITimezone, defaultStatsAPITimezone),
		Timeout:  durationEnvOrDefault(envStatsAPITimeout, defaultStatsAPITimeout),
	}
}
