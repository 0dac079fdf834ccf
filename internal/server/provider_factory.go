package server

import (
	"log/slog"
	"time"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/providers"
)

// The Stats API is keyless but shared; keep at least a second between
// calls so backfill bursts stay polite.
const minFetchSpacing = time.Second

// providerFactory assembles the provider with shared wrappers
// (instrumentation + rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider, base)
	instrumented := providers.NewInstrumentedProvider(base, name, f.metrics)
	limited := providers.NewRateLimitedProvider(instrumented, minFetchSpacing, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, 0, 0)
}
