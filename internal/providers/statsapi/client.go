package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/timeutil"
)

// Config controls how the client reaches the MLB Stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches schedules and standings from the MLB Stats API and maps
// them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

// NewClient constructs a Stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
	}
}

// FetchScoreboard retrieves one day's games with linescore hydration.
func (c *Client) FetchScoreboard(ctx context.Context, date string) (games.ScoreboardResponse, error) {
	resolved := c.resolveDate(date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schedule", nil)
	if err != nil {
		return games.ScoreboardResponse{}, err
	}
	q := req.URL.Query()
	q.Set("sportId", sportID)
	q.Set("date", resolved)
	q.Set("hydrate", scheduleHydrate)
	req.URL.RawQuery = q.Encode()

	var payload scheduleResponse
	if err := c.do(req, &payload); err != nil {
		return games.ScoreboardResponse{}, err
	}

	var list []games.GameSummary
	for _, day := range payload.Dates {
		for _, g := range day.Games {
			list = append(list, mapGame(g))
		}
	}
	return games.NewScoreboardResponse(resolved, list), nil
}

// FetchStandings retrieves both leagues' regular-season standings.
func (c *Client) FetchStandings(ctx context.Context, season string) ([]standings.LeagueStandings, error) {
	if season == "" {
		season = timeutil.SeasonYear(c.now().In(c.loc))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/standings", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("leagueId", leagueIDs)
	q.Set("season", season)
	q.Set("standingsTypes", standingsTypes)
	q.Set("hydrate", "team")
	req.URL.RawQuery = q.Encode()

	var payload standingsResponse
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	return mapStandings(payload), nil
}

func (c *Client) do(req *http.Request, payload any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("statsapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(payload)
}

func (c *Client) resolveDate(date string) string {
	if date != "" {
		if _, err := timeutil.ParseDate(date); err == nil {
			return date
		}
	}
	return timeutil.FormatDate(c.now().In(c.loc))
}
