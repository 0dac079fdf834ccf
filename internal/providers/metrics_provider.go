package providers

import (
	"context"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/metrics"
)

// instrumentedProvider records per-call metrics around an inner provider.
type instrumentedProvider struct {
	inner    DataProvider
	name     string
	recorder *metrics.Recorder
}

// NewInstrumentedProvider wraps a provider so every fetch is counted and
// timed under the given provider name. A nil recorder yields the inner
// provider unchanged.
func NewInstrumentedProvider(inner DataProvider, name string, recorder *metrics.Recorder) DataProvider {
	if recorder == nil {
		return inner
	}
	return &instrumentedProvider{inner: inner, name: name, recorder: recorder}
}

func (p *instrumentedProvider) FetchScoreboard(ctx context.Context, date string) (games.ScoreboardResponse, error) {
	start := time.Now()
	sb, err := p.inner.FetchScoreboard(ctx, date)
	p.record(start, err)
	return sb, err
}

func (p *instrumentedProvider) FetchStandings(ctx context.Context, season string) ([]standings.LeagueStandings, error) {
	start := time.Now()
	leagues, err := p.inner.FetchStandings(ctx, season)
	p.record(start, err)
	return leagues, err
}

func (p *instrumentedProvider) record(start time.Time, err error) {
	p.recorder.RecordProviderAttempt(p.name, time.Since(start), err)
	if rle, ok := AsRateLimitError(err); ok {
		p.recorder.RecordRateLimit(p.name, rle.RetryAfter)
	}
}
