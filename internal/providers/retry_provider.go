package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultRetryInterval = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	maxAttempts int
	interval    time.Duration
}

// NewRetryingProvider wraps the given provider with exponential-backoff
// retries. If maxAttempts/interval are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, maxAttempts int, interval time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		interval:    interval,
	}
}

func (r *retryingProvider) FetchScoreboard(ctx context.Context, date string) (games.ScoreboardResponse, error) {
	var out games.ScoreboardResponse
	op := func() error {
		sb, err := r.inner.FetchScoreboard(ctx, date)
		if err != nil {
			return err
		}
		out = sb
		return nil
	}
	if err := r.retry(ctx, "scoreboard", op); err != nil {
		return games.ScoreboardResponse{}, err
	}
	return out, nil
}

func (r *retryingProvider) FetchStandings(ctx context.Context, season string) ([]standings.LeagueStandings, error) {
	var out []standings.LeagueStandings
	op := func() error {
		leagues, err := r.inner.FetchStandings(ctx, season)
		if err != nil {
			return err
		}
		out = leagues
		return nil
	}
	if err := r.retry(ctx, "standings", op); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *retryingProvider) retry(ctx context.Context, view string, op backoff.Operation) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.interval

	notify := func(err error, next time.Duration) {
		logger := logging.FromContext(ctx, r.logger)
		logging.Warn(logger, "provider fetch retry",
			"view", view,
			"next_attempt_in", next.String(),
			"err", err,
		)
	}

	err := backoff.RetryNotify(op,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx),
		notify,
	)
	if err != nil {
		logger := logging.FromContext(ctx, r.logger)
		logging.Warn(logger, "provider fetch failed",
			"view", view,
			"attempts", r.maxAttempts,
			"err", err,
		)
	}
	return err
}
