package snapshots

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/timeutil"
)

// StandingsSink receives refreshed standings when the syncer updates them.
type StandingsSink interface {
	ReplaceStandings(season string, leagues []standings.LeagueStandings)
}

// Syncer backfills and prunes snapshots on a schedule.
type Syncer struct {
	provider  providers.DataProvider
	writer    *Writer
	cfg       SyncConfig
	logger    *slog.Logger
	now       func() time.Time
	sink      StandingsSink
	newTicker func(time.Duration) *time.Ticker
}

// SyncConfig controls snapshot sync behavior.
type SyncConfig struct {
	Enabled               bool
	Days                  int
	FutureDays            int
	Interval              time.Duration
	DailyHourUTC          int
	StandingsRefreshHours int
}

// NewSyncer constructs a snapshot syncer.
func NewSyncer(provider providers.DataProvider, writer *Writer, cfg SyncConfig, logger *slog.Logger, sink StandingsSink) *Syncer {
	if cfg.Days <= 0 {
		cfg.Days = 7
	}
	if cfg.FutureDays < 0 {
		cfg.FutureDays = 0
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.DailyHourUTC < 0 || cfg.DailyHourUTC > 23 {
		cfg.DailyHourUTC = 2
	}
	if cfg.StandingsRefreshHours <= 0 {
		cfg.StandingsRefreshHours = 6
	}

	return &Syncer{
		provider:  provider,
		writer:    writer,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		sink:      sink,
		newTicker: time.NewTicker,
	}
}

// Run performs a one-time backfill spaced by Interval, then re-runs it
// once a day. Callers should run this in a goroutine.
func (s *Syncer) Run(ctx context.Context) {
	if s == nil || !s.cfg.Enabled || s.writer == nil || s.provider == nil {
		return
	}
	s.logInfo(
		"snapshot sync starting",
		"past_days", s.cfg.Days,
		"future_days", s.cfg.FutureDays,
		"interval", s.cfg.Interval.String(),
		"daily_hour_utc", s.cfg.DailyHourUTC,
		"standings_refresh_hours", s.cfg.StandingsRefreshHours,
	)
	s.syncStandings(ctx, s.now().UTC())
	s.backfill(ctx, s.now().UTC())
	go s.daily(ctx)
}

func (s *Syncer) backfill(ctx context.Context, now time.Time) {
	dates := s.buildDates(now)
	for i, date := range dates {
		select {
		case <-ctx.Done():
			return
		default:
		}
		s.fetchAndWrite(ctx, date)
		if i < len(dates)-1 {
			s.sleep(ctx, s.cfg.Interval)
		}
	}
}

func (s *Syncer) daily(ctx context.Context) {
	ticker := s.newTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if now.UTC().Hour() == s.cfg.DailyHourUTC {
				current := s.now().UTC()
				s.syncStandings(ctx, current)
				s.backfill(ctx, current)
			}
		}
	}
}

func (s *Syncer) buildDates(now time.Time) []string {
	var dates []string
	today := timeutil.FormatDate(now)
	yesterday := timeutil.FormatDate(now.AddDate(0, 0, -1))

	// Always refresh today and yesterday to capture live/final scores.
	dates = append(dates, today, yesterday)

	// Past window beyond yesterday: only fetch if missing (e.g., startup
	// or outage).
	for i := 2; i < s.cfg.Days; i++ {
		date := timeutil.FormatDate(now.AddDate(0, 0, -i))
		if !s.hasSnapshot(kindGames, date) {
			dates = append(dates, date)
		}
	}

	// Future window: prefetch missing only.
	for i := 1; i <= s.cfg.FutureDays; i++ {
		date := timeutil.FormatDate(now.AddDate(0, 0, i))
		if !s.hasSnapshot(kindGames, date) {
			dates = append(dates, date)
		}
	}

	return dates
}

func (s *Syncer) fetchAndWrite(ctx context.Context, date string) {
	start := time.Now()
	sb, err := s.provider.FetchScoreboard(ctx, date)
	if err != nil {
		s.logWarn("snapshot sync fetch failed", "date", date, "err", err)
		return
	}
	if len(sb.Games) == 0 {
		// Off days are normal in the calendar; record the empty day so
		// the backfill does not retry it forever.
		s.logInfo("snapshot sync empty day", "date", date)
	}
	if err := s.writer.WriteScoreboardSnapshot(date, sb); err != nil {
		s.logWarn("snapshot sync write failed", "date", date, "err", err)
		return
	}
	s.logInfo("snapshot written",
		"date", date,
		"count", len(sb.Games),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Syncer) syncStandings(ctx context.Context, now time.Time) {
	if !s.shouldRefreshStandings(now) {
		return
	}
	start := time.Now()
	season := timeutil.SeasonYear(now)
	leagues, err := s.provider.FetchStandings(ctx, season)
	if err != nil {
		s.logWarn("standings snapshot fetch failed", "season", season, "err", err)
		return
	}
	snap := standings.StandingsResponse{Season: season, Leagues: leagues}
	if err := s.writer.WriteStandingsSnapshot(season, snap); err != nil {
		s.logWarn("standings snapshot write failed", "season", season, "err", err)
		return
	}
	if s.sink != nil {
		s.sink.ReplaceStandings(season, leagues)
	}
	s.logInfo("standings snapshot written",
		"season", season,
		"count", len(leagues),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Syncer) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *Syncer) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Syncer) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *Syncer) hasSnapshot(kind snapshotKind, key string) bool {
	if s == nil || s.writer == nil || s.writer.basePath == "" || key == "" {
		return false
	}
	_, err := os.Stat(snapshotPath(s.writer.basePath, kind, key))
	return err == nil
}

func (s *Syncer) shouldRefreshStandings(now time.Time) bool {
	if s == nil || s.writer == nil {
		return true
	}
	manifestPath := filepath.Join(s.writer.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, s.writer.retentionDays)
	if m.Standings.LastRefreshed.IsZero() {
		return true
	}
	next := m.Standings.LastRefreshed.Add(time.Duration(s.cfg.StandingsRefreshHours) * time.Hour)
	return !now.Before(next)
}
