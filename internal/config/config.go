package config

// Config holds runtime configuration for the server.
type Config struct {
	Port              string
	PollInterval      Duration
	StandingsInterval Duration
	Provider          string
	CORSOrigins       []string
	RedisURL          string
	StatsAPI          StatsAPIConfig
	Metrics           MetricsConfig
	Snapshots         SnapshotSyncConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:              envOrDefault(envPort, defaultPort),
		PollInterval:      durationEnvOrDefault(envPollInterval, defaultPollInterval),
		StandingsInterval: durationEnvOrDefault(envStandingsInterval, defaultStandingsInterval),
		Provider:          envOrDefault(envProvider, defaultProvider),
		CORSOrigins:       listEnvOrDefault(envCORSOrigins, nil),
		RedisURL:          envOrDefault(envRedisURL, ""),
		StatsAPI:          loadStatsAPI(),
		Metrics:           loadMetrics(),
		Snapshots:         loadSnapshotSync(),
	}
}
