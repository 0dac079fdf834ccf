package server

import (
	"context"
	"log/slog"
	"net/http"

	"mlb-scores-service/internal/app/scores"
	appstandings "mlb-scores-service/internal/app/standings"
	"mlb-scores-service/internal/cache"
	"mlb-scores-service/internal/config"
	httpserver "mlb-scores-service/internal/http"
	"mlb-scores-service/internal/http/handlers"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/poller"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/store"
	"mlb-scores-service/internal/ws"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg              config.Config
	logger           *slog.Logger
	metrics          *metrics.Recorder
	store            *store.MemoryStore
	scoresService    *scores.Service
	standingsService *appstandings.Service
	cache            *cache.ScoreboardCache
	hub              *ws.Hub
	wsCancel         context.CancelFunc
	httpServer       httpServer
	metricsServer    httpServer
	poller           Poller
	syncer           interface{ Run(context.Context) }
	metricsStop      func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, 0, 0)
	}

	memoryStore := store.NewMemoryStore()
	scoresSvc := scores.NewService(memoryStore)
	standingsSvc := appstandings.NewService(memoryStore)

	snaps := buildSnapshots(cfg, provider, standingsSvc, logger)
	scoreCache := buildCache(cfg, logger)

	hub := ws.NewHub(logger, recorder)
	wsCtx, wsCancel := context.WithCancel(context.Background())
	wsHandler := ws.NewHandler(wsCtx, hub, logger)

	plr := poller.New(provider, scoresSvc, standingsSvc, poller.Options{
		Writer:            snaps.writer,
		Cache:             scoreCache,
		Hub:               hub,
		Logger:            logger,
		Recorder:          recorder,
		Interval:          cfg.PollInterval,
		StandingsInterval: cfg.StandingsInterval,
	})

	httpSrv := buildHTTPServer(cfg, scoresSvc, standingsSvc, provider, snaps, scoreCache, recorder, logger, wsHandler, plr)

	return &Server{
		cfg:              cfg,
		logger:           logger,
		metrics:          recorder,
		store:            memoryStore,
		scoresService:    scoresSvc,
		standingsService: standingsSvc,
		cache:            scoreCache,
		hub:              hub,
		wsCancel:         wsCancel,
		httpServer:       httpSrv,
		metricsServer:    metricsSrv,
		poller:           plr,
		syncer:           snaps.syncer,
		metricsStop:      metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildCache(cfg config.Config, logger *slog.Logger) *cache.ScoreboardCache {
	if cfg.RedisURL == "" {
		return nil
	}
	scoreCache, err := cache.NewScoreboardCacheFromURL(cfg.RedisURL)
	if err != nil {
		logging.Warn(logger, "redis cache disabled", "err", err)
		return nil
	}
	return scoreCache
}

func buildHTTPServer(
	cfg config.Config,
	scoresSvc *scores.Service,
	standingsSvc *appstandings.Service,
	provider providers.DataProvider,
	snaps snapshotComponents,
	scoreCache *cache.ScoreboardCache,
	recorder *metrics.Recorder,
	logger *slog.Logger,
	wsHandler http.Handler,
	plr Poller,
) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	loc := providers.ResolveTimezone(cfg.StatsAPI.Timezone)
	handler := handlers.NewHandler(scoresSvc, standingsSvc, provider, snaps.store, scoreCache, recorder, logger, loc, statusFn)

	var admin *handlers.AdminHandler
	if cfg.Snapshots.AdminToken != "" {
		admin = handlers.NewAdminHandler(snaps.writer, provider, cfg.Snapshots.AdminToken, logger)
	}

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:     handler,
		Admin:       admin,
		WS:          wsHandler,
		Logger:      logger,
		Recorder:    recorder,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the hub, poller, syncer, and HTTP server, then waits for
// context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.hub != nil {
		go s.hub.Run(ctx)
	}
	s.poller.Start(ctx)
	if s.syncer != nil {
		go s.syncer.Run(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.wsCancel != nil {
		s.wsCancel()
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.pollerProvider().(interface{ Close() }); ok {
		rl.Close()
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil && s.logger != nil {
			s.logger.Warn("cache close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

// pollerProvider attempts to extract the underlying provider from the poller when available.
// Best-effort helper to enable cleanup of rate-limited tickers; safe if not supported.
func (s *Server) pollerProvider() providers.DataProvider {
	if pa, ok := s.poller.(interface {
		Provider() providers.DataProvider
	}); ok {
		return pa.Provider()
	}
	return nil
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
