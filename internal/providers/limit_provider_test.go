package providers

import (
	"context"
	"testing"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
)

type countingProvider struct {
	scoreboards int
	standings   int
}

func (c *countingProvider) FetchScoreboard(ctx context.Context, date string) (games.ScoreboardResponse, error) {
	c.scoreboards++
	return games.NewScoreboardResponse(date, nil), nil
}

func (c *countingProvider) FetchStandings(ctx context.Context, season string) ([]standings.LeagueStandings, error) {
	c.standings++
	return nil, nil
}

func TestRateLimitedProviderDelegates(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, time.Millisecond, nil)
	defer p.(*rateLimitedProvider).Close()

	if _, err := p.FetchScoreboard(context.Background(), "2024-07-04"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := p.FetchStandings(context.Background(), "2024"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if inner.scoreboards != 1 || inner.standings != 1 {
		t.Fatalf("expected one call each, got %d/%d", inner.scoreboards, inner.standings)
	}
}

func TestRateLimitedProviderCancellation(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, time.Hour, nil)
	defer p.(*rateLimitedProvider).Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.FetchScoreboard(ctx, ""); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if inner.scoreboards != 0 {
		t.Fatalf("inner provider should not be called, got %d", inner.scoreboards)
	}
}

func TestRateLimitedProviderNilInner(t *testing.T) {
	p := NewRateLimitedProvider(nil, time.Millisecond, nil)
	if _, err := p.FetchScoreboard(context.Background(), ""); err != ErrProviderUnavailable {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
