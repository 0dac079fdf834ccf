package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.StatsAPI.BaseURL != defaultStatsAPIBaseURL {
		t.Fatalf("expected default base url %s, got %s", defaultStatsAPIBaseURL, cfg.StatsAPI.BaseURL)
	}
	if cfg.StatsAPI.Timezone != defaultStatsAPITimezone {
		t.Fatalf("expected default timezone %s, got %s", defaultStatsAPITimezone, cfg.StatsAPI.Timezone)
	}
	if cfg.RedisURL != "" {
		t.Fatalf("expected empty redis url by default, got %s", cfg.RedisURL)
	}
	if cfg.CORSOrigins != nil {
		t.Fatalf("expected nil cors origins by default, got %v", cfg.CORSOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envStandingsInterval, "5m")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envStatsAPIBaseURL, "http://example.com/api/v1")
	t.Setenv(envStatsAPITimezone, "America/Los_Angeles")
	t.Setenv(envRedisURL, "redis://localhost:6379/1")
	t.Setenv(envCORSOrigins, "https://scores.example.com, https://beta.example.com")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.StandingsInterval != 5*time.Minute {
		t.Fatalf("expected standings interval 5m, got %s", cfg.StandingsInterval)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.StatsAPI.BaseURL != "http://example.com/api/v1" {
		t.Fatalf("expected base url override, got %s", cfg.StatsAPI.BaseURL)
	}
	if cfg.StatsAPI.Timezone != "America/Los_Angeles" {
		t.Fatalf("expected timezone override, got %s", cfg.StatsAPI.Timezone)
	}
	if cfg.RedisURL != "redis://localhost:6379/1" {
		t.Fatalf("expected redis url override, got %s", cfg.RedisURL)
	}
	want := []string{"https://scores.example.com", "https://beta.example.com"}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != want[0] || cfg.CORSOrigins[1] != want[1] {
		t.Fatalf("expected cors origins %v, got %v", want, cfg.CORSOrigins)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadSnapshotSyncRetention(t *testing.T) {
	t.Setenv(envSnapshotDays, "10")

	cfg := Load()

	if cfg.Snapshots.Days != 10 {
		t.Fatalf("expected 10 past days, got %d", cfg.Snapshots.Days)
	}
	if cfg.Snapshots.RetentionDays != 11 {
		t.Fatalf("expected retention of past window +1, got %d", cfg.Snapshots.RetentionDays)
	}
}
