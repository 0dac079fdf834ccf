package providers

import (
	"context"
	"log/slog"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval
// between upstream calls, shared across both fetch methods.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that limits calls to the
// given interval. Calls block until the interval elapses to avoid
// exceeding upstream quotas.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchScoreboard(ctx context.Context, date string) (games.ScoreboardResponse, error) {
	if p == nil || p.next == nil {
		return games.ScoreboardResponse{}, ErrProviderUnavailable
	}
	if err := p.wait(ctx); err != nil {
		return games.ScoreboardResponse{}, err
	}
	return p.next.FetchScoreboard(ctx, date)
}

func (p *rateLimitedProvider) FetchStandings(ctx context.Context, season string) ([]standings.LeagueStandings, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchStandings(ctx, season)
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		}
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Close stops the shared ticker. Safe to call once at shutdown.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
