package server

import (
	"log/slog"
	"net/http"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/providers/fixture"
	"mlb-scores-service/internal/providers/statsapi"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "statsapi", "":
		return statsapi.NewClient(statsapi.Config{
			BaseURL:    cfg.StatsAPI.BaseURL,
			Timezone:   cfg.StatsAPI.Timezone,
			HTTPClient: &http.Client{Timeout: cfg.StatsAPI.Timeout},
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
