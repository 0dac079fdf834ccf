package handlers

import (
	"log/slog"
	nethttp "net/http"
	"regexp"
	"time"

	"mlb-scores-service/internal/app/scores"
	appstandings "mlb-scores-service/internal/app/standings"
	"mlb-scores-service/internal/cache"
	"mlb-scores-service/internal/domain/games"
	domainstandings "mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/poller"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/snapshots"
	"mlb-scores-service/internal/timeutil"
)

type nowFunc func() time.Time

var seasonPattern = regexp.MustCompile(`^\d{4}$`)

// Handler wires HTTP routes to the domain services.
type Handler struct {
	scores    *scores.Service
	standings *appstandings.Service
	provider  providers.DataProvider
	snaps     snapshots.Store
	cache     *cache.ScoreboardCache
	recorder  *metrics.Recorder
	logger    *slog.Logger
	now       nowFunc
	loc       *time.Location
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler with defaults. The location decides
// what "today" means for dateless scoreboard requests.
func NewHandler(
	scoresSvc *scores.Service,
	standingsSvc *appstandings.Service,
	provider providers.DataProvider,
	snaps snapshots.Store,
	scoreCache *cache.ScoreboardCache,
	recorder *metrics.Recorder,
	logger *slog.Logger,
	loc *time.Location,
	statusFn func() poller.Status,
) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		scores:    scoresSvc,
		standings: standingsSvc,
		provider:  provider,
		snaps:     snaps,
		cache:     scoreCache,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
		loc:       loc,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Scoreboard returns the game scoreboard for a date (default: today).
//
// Today's scoreboard is served from the in-memory view kept warm by the
// poller; other dates come from the Redis cache or FS snapshots, with a
// live upstream fetch as the last resort.
func (h *Handler) Scoreboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	dateParam := r.URL.Query().Get("date")
	if dateParam != "" {
		if _, err := timeutil.ParseDate(dateParam); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", logger)
			return
		}
	}

	today := h.today(r.URL.Query().Get("tz"))
	date := dateParam
	if date == "" {
		date = today
	}

	if date == today {
		sb := h.scores.Scoreboard()
		if sb.Date == date && len(sb.Games) > 0 {
			writeJSON(w, nethttp.StatusOK, sb, logger)
			return
		}
	}

	if sb, ok := h.lookupScoreboard(r, date); ok {
		writeJSON(w, nethttp.StatusOK, sb, logger)
		return
	}

	// Nothing stored for this date; go upstream.
	var sb games.ScoreboardResponse
	var err error
	if date == today {
		sb, _, err = h.scores.Refresh(r.Context(), h.provider, date)
	} else {
		sb, err = h.provider.FetchScoreboard(r.Context(), date)
	}
	if err != nil {
		logging.Warn(logger, "scoreboard fetch failed", "date", date, "err", err)
		writeError(w, r, nethttp.StatusBadGateway, "scoreboard unavailable", logger)
		return
	}
	if h.cache != nil {
		if cacheErr := h.cache.WriteScoreboard(r.Context(), date, sb); cacheErr != nil {
			logging.Warn(logger, "scoreboard cache write failed", "date", date, "err", cacheErr)
		}
	}
	writeJSON(w, nethttp.StatusOK, sb, logger)
}

// Standings returns division standings for a season (default: current).
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	resp, status := h.resolveStandings(r)
	if status != nethttp.StatusOK {
		writeError(w, r, status, standingsErrorMessage(status), logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, logger)
}

// Postseason returns the seeded playoff picture for a season.
//
// Seeding is derived from the same standings feed, so the two panels
// fail independently only when their upstreams do.
func (h *Handler) Postseason(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	resp, status := h.resolveStandings(r)
	if status != nethttp.StatusOK {
		writeError(w, r, status, standingsErrorMessage(status), logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, appstandings.BuildPostseason(resp.Season, resp.Leagues), logger)
}

func (h *Handler) resolveStandings(r *nethttp.Request) (domainstandings.StandingsResponse, int) {
	logger := loggerFromContext(r, h.logger)
	seasonParam := r.URL.Query().Get("season")
	if seasonParam != "" && !seasonPattern.MatchString(seasonParam) {
		return domainstandings.StandingsResponse{}, nethttp.StatusBadRequest
	}

	season := h.standings.ResolveSeason(seasonParam)
	current := h.standings.Standings()
	if current.Season == season && len(current.Leagues) > 0 {
		return current, nethttp.StatusOK
	}

	if h.cache != nil {
		if resp, err := h.cache.ReadStandings(r.Context(), season); err == nil {
			h.recorder.RecordCacheLookup(true)
			return resp, nethttp.StatusOK
		}
		h.recorder.RecordCacheLookup(false)
	}
	if h.snaps != nil {
		if resp, err := h.snaps.LoadStandings(season); err == nil && len(resp.Leagues) > 0 {
			return resp, nethttp.StatusOK
		}
	}

	// Only the current season commits to the in-memory view; a
	// historical season is a one-off read.
	var resp domainstandings.StandingsResponse
	var err error
	if season == h.standings.ResolveSeason("") {
		resp, _, err = h.standings.Refresh(r.Context(), h.provider, season)
	} else {
		var leagues []domainstandings.LeagueStandings
		leagues, err = h.provider.FetchStandings(r.Context(), season)
		resp = domainstandings.StandingsResponse{Season: season, Leagues: leagues}
	}
	if err != nil {
		logging.Warn(logger, "standings fetch failed", "season", season, "err", err)
		return domainstandings.StandingsResponse{}, nethttp.StatusBadGateway
	}
	if h.cache != nil {
		if cacheErr := h.cache.WriteStandings(r.Context(), season, resp); cacheErr != nil {
			logging.Warn(logger, "standings cache write failed", "season", season, "err", cacheErr)
		}
	}
	return resp, nethttp.StatusOK
}

func (h *Handler) lookupScoreboard(r *nethttp.Request, date string) (games.ScoreboardResponse, bool) {
	logger := loggerFromContext(r, h.logger)
	if h.cache != nil {
		if sb, err := h.cache.ReadScoreboard(r.Context(), date); err == nil {
			h.recorder.RecordCacheLookup(true)
			logging.Info(logger, "served cached scoreboard", "date", date, "provider", "redis", "count", len(sb.Games))
			return sb, true
		}
		h.recorder.RecordCacheLookup(false)
	}
	if h.snaps != nil {
		if sb, err := h.snaps.LoadScoreboard(date); err == nil {
			logging.Info(logger, "served snapshot scoreboard", "date", date, "provider", "snapshot", "count", len(sb.Games))
			return sb, true
		}
	}
	return games.ScoreboardResponse{}, false
}

func (h *Handler) today(tz string) string {
	loc := h.loc
	if tz != "" {
		if resolved := providers.ResolveTimezone(tz); resolved != nil {
			loc = resolved
		}
	}
	return timeutil.FormatDate(h.now().In(loc))
}

func standingsErrorMessage(status int) string {
	switch status {
	case nethttp.StatusBadRequest:
		return "invalid season (expected YYYY)"
	case nethttp.StatusBadGateway:
		return "standings unavailable"
	default:
		return nethttp.StatusText(status)
	}
}
