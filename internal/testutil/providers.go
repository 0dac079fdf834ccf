package testutil

import (
	"context"
	"sync"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
)

// StubProvider is a scriptable DataProvider for tests.
type StubProvider struct {
	mu sync.Mutex

	ScoreboardFn func(ctx context.Context, date string) (games.ScoreboardResponse, error)
	StandingsFn  func(ctx context.Context, season string) ([]standings.LeagueStandings, error)

	ScoreboardCalls []string
	StandingsCalls  []string
}

func (p *StubProvider) FetchScoreboard(ctx context.Context, date string) (games.ScoreboardResponse, error) {
	p.mu.Lock()
	p.ScoreboardCalls = append(p.ScoreboardCalls, date)
	fn := p.ScoreboardFn
	p.mu.Unlock()
	if fn == nil {
		return games.NewScoreboardResponse(date, nil), nil
	}
	return fn(ctx, date)
}

func (p *StubProvider) FetchStandings(ctx context.Context, season string) ([]standings.LeagueStandings, error) {
	p.mu.Lock()
	p.StandingsCalls = append(p.StandingsCalls, season)
	fn := p.StandingsFn
	p.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(ctx, season)
}
