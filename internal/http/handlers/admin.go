package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/http/requestutil"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/snapshots"
	"mlb-scores-service/internal/timeutil"
)

// AdminHandler exposes admin-only endpoints (e.g., snapshot refresh).
type AdminHandler struct {
	writer   *snapshots.Writer
	provider providers.DataProvider
	token    string
	logger   *slog.Logger
	now      func() time.Time
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(writer *snapshots.Writer, provider providers.DataProvider, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		writer:   writer,
		provider: provider,
		token:    token,
		logger:   logger,
		now:      time.Now,
	}
}

// RefreshSnapshots writes a scoreboard snapshot for the requested date
// (defaults to today) and, when a season is given, a standings snapshot.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.provider == nil || h.writer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = timeutil.FormatDate(h.now().UTC())
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		logging.Warn(logger, "admin snapshot invalid date", slog.String("date", date))
		writeError(w, r, http.StatusBadRequest, "invalid date format", logger)
		return
	}

	sb, err := h.provider.FetchScoreboard(r.Context(), date)
	if err != nil {
		logging.Warn(logger, "admin snapshot fetch failed",
			slog.String(logging.FieldDate, date),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to fetch scoreboard", logger)
		return
	}
	if err := h.writer.WriteScoreboardSnapshot(date, sb); err != nil {
		logging.Warn(logger, "admin snapshot write failed",
			slog.String(logging.FieldDate, date),
			slog.Int(logging.FieldCount, len(sb.Games)),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	result := map[string]any{
		"date":   date,
		"games":  len(sb.Games),
		"status": "ok",
	}

	if season := strings.TrimSpace(r.URL.Query().Get("season")); season != "" {
		if !seasonPattern.MatchString(season) {
			writeError(w, r, http.StatusBadRequest, "invalid season (expected YYYY)", logger)
			return
		}
		leagues, err := h.provider.FetchStandings(r.Context(), season)
		if err != nil {
			logging.Warn(logger, "admin standings fetch failed",
				slog.String(logging.FieldSeason, season),
				slog.Any("err", err),
			)
			writeError(w, r, http.StatusBadGateway, "failed to fetch standings", logger)
			return
		}
		snap := standings.StandingsResponse{Season: season, Leagues: leagues}
		if err := h.writer.WriteStandingsSnapshot(season, snap); err != nil {
			writeError(w, r, http.StatusInternalServerError, "failed to write standings snapshot", logger)
			return
		}
		result["season"] = season
		result["leagues"] = len(leagues)
	}

	writeJSON(w, http.StatusOK, result, logger)
	logging.Info(logger, "admin snapshot written",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(sb.Games)),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
