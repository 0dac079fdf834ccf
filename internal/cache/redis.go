package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
)

// TTLs by content volatility: live scoreboards churn every pitch, final
// ones only change on scoring corrections, standings refresh a few times
// a day.
const (
	LiveScoreboardTTL  = 2 * time.Minute
	FinalScoreboardTTL = 6 * time.Hour
	PastScoreboardTTL  = 24 * time.Hour
	StandingsTTL       = 30 * time.Minute
)

// ErrMiss is returned when a key is absent from the cache.
var ErrMiss = redis.Nil

// ScoreboardCache stores rendered scoreboard and standings payloads in
// Redis so replicas without a warm snapshot folder can still serve
// recent dates quickly.
type ScoreboardCache struct {
	client *redis.Client
}

// NewScoreboardCache wraps an existing Redis client.
func NewScoreboardCache(client *redis.Client) *ScoreboardCache {
	return &ScoreboardCache{client: client}
}

// NewScoreboardCacheFromURL dials Redis from a URL such as
// redis://localhost:6379/0. Returns an error if the URL does not parse;
// connectivity problems surface on first use.
func NewScoreboardCacheFromURL(url string) (*ScoreboardCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return NewScoreboardCache(redis.NewClient(opts)), nil
}

// WriteScoreboard stores a scoreboard keyed by date with a TTL chosen
// from the games it contains.
func (c *ScoreboardCache) WriteScoreboard(ctx context.Context, date string, sb games.ScoreboardResponse) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(sb)
	if err != nil {
		return fmt.Errorf("marshaling scoreboard: %w", err)
	}
	return c.client.Set(ctx, scoreboardKey(date), data, scoreboardTTL(sb)).Err()
}

// ReadScoreboard retrieves a cached scoreboard. Returns ErrMiss when
// the date is not cached.
func (c *ScoreboardCache) ReadScoreboard(ctx context.Context, date string) (games.ScoreboardResponse, error) {
	if c == nil || c.client == nil {
		return games.ScoreboardResponse{}, ErrMiss
	}
	data, err := c.client.Get(ctx, scoreboardKey(date)).Bytes()
	if err != nil {
		return games.ScoreboardResponse{}, err
	}
	var sb games.ScoreboardResponse
	if err := json.Unmarshal(data, &sb); err != nil {
		return games.ScoreboardResponse{}, fmt.Errorf("unmarshaling scoreboard: %w", err)
	}
	if sb.Games == nil {
		sb.Games = []games.GameSummary{}
	}
	return sb, nil
}

// WriteStandings stores a standings payload keyed by season.
func (c *ScoreboardCache) WriteStandings(ctx context.Context, season string, resp standings.StandingsResponse) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshaling standings: %w", err)
	}
	return c.client.Set(ctx, standingsKey(season), data, StandingsTTL).Err()
}

// ReadStandings retrieves cached standings for a season. Returns
// ErrMiss on absence.
func (c *ScoreboardCache) ReadStandings(ctx context.Context, season string) (standings.StandingsResponse, error) {
	if c == nil || c.client == nil {
		return standings.StandingsResponse{}, ErrMiss
	}
	data, err := c.client.Get(ctx, standingsKey(season)).Bytes()
	if err != nil {
		return standings.StandingsResponse{}, err
	}
	var resp standings.StandingsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return standings.StandingsResponse{}, fmt.Errorf("unmarshaling standings: %w", err)
	}
	return resp, nil
}

// Ping verifies connectivity, for readiness checks.
func (c *ScoreboardCache) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *ScoreboardCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func scoreboardKey(date string) string {
	return fmt.Sprintf("scoreboard:%s", date)
}

func standingsKey(season string) string {
	return fmt.Sprintf("standings:%s", season)
}

func scoreboardTTL(sb games.ScoreboardResponse) time.Duration {
	anyLive := false
	allFinal := len(sb.Games) > 0
	for _, g := range sb.Games {
		if g.IsLive {
			anyLive = true
		}
		if !g.IsFinal {
			allFinal = false
		}
	}
	switch {
	case anyLive:
		return LiveScoreboardTTL
	case allFinal:
		return PastScoreboardTTL
	default:
		return FinalScoreboardTTL
	}
}
