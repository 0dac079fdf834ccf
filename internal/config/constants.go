package config

import "time"

const (
	envPort              = "PORT"
	envPollInterval      = "POLL_INTERVAL"
	envStandingsInterval = "STANDINGS_INTERVAL"
	envProvider          = "PROVIDER"
	envCORSOrigins       = "CORS_ORIGINS"
	envRedisURL          = "REDIS_URL"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken        = "ADMIN_TOKEN"

	envSnapshotSync       = "SNAPSHOT_SYNC_ENABLED"
	envSnapshotDays       = "SNAPSHOT_SYNC_DAYS"
	envSnapshotFutureDays = "SNAPSHOT_FUTURE_DAYS"
	envSnapshotRate       = "SNAPSHOT_SYNC_INTERVAL"
	envSnapshotHour       = "SNAPSHOT_DAILY_HOUR"
	envSnapshotFolder     = "SNAPSHOT_FOLDER"

	defaultPort = "4000"
	// Live games update every pitch; 30s keeps the dashboard fresh
	// without hammering the (keyless, generous) Stats API.
	defaultPollInterval      = 30 * Duration(time.Second)
	defaultStandingsInterval = 15 * Duration(time.Minute)
	defaultProvider          = "statsapi"
	defaultMetricsPort       = "9090"

	defaultSnapshotSync       = true
	defaultSnapshotDays       = 7
	defaultSnapshotFutureDays = 2
	// Snapshot fetch cadence during backfill; spaced to leave headroom upstream.
	defaultSnapshotInterval = 30 * Duration(time.Second)
	// UTC hour to run daily snapshot prune/backfill (after West Coast games end).
	defaultSnapshotDailyHour = 9
	defaultSnapshotFolder    = "data/snapshots"
)
