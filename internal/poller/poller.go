package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mlb-scores-service/internal/app/scores"
	appstandings "mlb-scores-service/internal/app/standings"
	"mlb-scores-service/internal/cache"
	"mlb-scores-service/internal/domain/games"
	domainstandings "mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/timeutil"
)

const (
	defaultInterval          = 30 * time.Second
	defaultStandingsInterval = 15 * time.Minute
)

// SnapshotWriter persists scoreboard snapshots to disk.
type SnapshotWriter interface {
	WriteScoreboardSnapshot(date string, snapshot games.ScoreboardResponse) error
	WriteStandingsSnapshot(season string, snapshot domainstandings.StandingsResponse) error
}

// Broadcaster pushes refreshed scoreboards to live consumers.
type Broadcaster interface {
	Broadcast(sb games.ScoreboardResponse)
}

// Poller refreshes today's scoreboard on an interval and the current
// season's standings on a slower cadence. Each successful refresh is
// committed to the in-memory view, written to disk, cached, and pushed
// to websocket clients.
type Poller struct {
	provider  providers.DataProvider
	scores    *scores.Service
	standings *appstandings.Service
	writer    SnapshotWriter
	cache     *cache.ScoreboardCache
	hub       Broadcaster
	logger    *slog.Logger
	metrics   *metrics.Recorder

	interval          time.Duration
	standingsInterval time.Duration
	now               func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	lastStandings time.Time

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Options carries the optional poller collaborators.
type Options struct {
	Writer            SnapshotWriter
	Cache             *cache.ScoreboardCache
	Hub               Broadcaster
	Logger            *slog.Logger
	Recorder          *metrics.Recorder
	Interval          time.Duration
	StandingsInterval time.Duration
}

// New constructs a Poller with sane defaults.
func New(provider providers.DataProvider, scoresSvc *scores.Service, standingsSvc *appstandings.Service, opts Options) *Poller {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	standingsInterval := opts.StandingsInterval
	if standingsInterval <= 0 {
		standingsInterval = defaultStandingsInterval
	}
	return &Poller{
		provider:          provider,
		scores:            scoresSvc,
		standings:         standingsSvc,
		writer:            opts.Writer,
		cache:             opts.Cache,
		hub:               opts.Hub,
		logger:            opts.Logger,
		metrics:           opts.Recorder,
		interval:          interval,
		standingsInterval: standingsInterval,
		now:               time.Now,
		done:              make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	err := p.refreshScoreboard(ctx)
	if standingsErr := p.maybeRefreshStandings(ctx); err == nil {
		err = standingsErr
	}

	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
}

func (p *Poller) refreshScoreboard(ctx context.Context) error {
	start := time.Now()
	today := timeutil.FormatDate(p.now().UTC())

	sb, committed, err := p.scores.Refresh(ctx, p.provider, today)
	if err != nil {
		p.logError("poller scoreboard refresh failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		return err
	}
	if !committed {
		// A newer refresh won the view; skip downstream propagation too.
		return nil
	}

	if p.writer != nil {
		writeStart := time.Now()
		writeErr := p.writer.WriteScoreboardSnapshot(today, sb)
		if p.metrics != nil {
			p.metrics.RecordSnapshotWrite("games", time.Since(writeStart), writeErr)
		}
		if writeErr != nil {
			p.logError("poller snapshot write failed", writeErr)
		}
	}
	if p.cache != nil {
		if cacheErr := p.cache.WriteScoreboard(ctx, today, sb); cacheErr != nil {
			p.logError("poller cache write failed", cacheErr)
		}
	}
	if p.hub != nil {
		p.hub.Broadcast(sb)
	}

	p.logInfo("poller refreshed scoreboard",
		logging.FieldDate, today,
		logging.FieldCount, len(sb.Games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) maybeRefreshStandings(ctx context.Context) error {
	now := p.now()
	if !p.lastStandings.IsZero() && now.Sub(p.lastStandings) < p.standingsInterval {
		return nil
	}

	start := time.Now()
	resp, committed, err := p.standings.Refresh(ctx, p.provider, "")
	if err != nil {
		p.logError("poller standings refresh failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		return err
	}
	p.lastStandings = now
	if !committed {
		return nil
	}

	if p.writer != nil {
		writeStart := time.Now()
		writeErr := p.writer.WriteStandingsSnapshot(resp.Season, resp)
		if p.metrics != nil {
			p.metrics.RecordSnapshotWrite("standings", time.Since(writeStart), writeErr)
		}
		if writeErr != nil {
			p.logError("poller standings snapshot write failed", writeErr)
		}
	}
	if p.cache != nil {
		if cacheErr := p.cache.WriteStandings(ctx, resp.Season, resp); cacheErr != nil {
			p.logError("poller standings cache write failed", cacheErr)
		}
	}

	p.logInfo("poller refreshed standings",
		logging.FieldSeason, resp.Season,
		logging.FieldCount, len(resp.Leagues),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	logging.Error(p.logger, msg, err, attrs...)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.DataProvider {
	return p.provider
}
