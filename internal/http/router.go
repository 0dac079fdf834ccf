package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"mlb-scores-service/internal/http/handlers"
	"mlb-scores-service/internal/http/middleware"
	"mlb-scores-service/internal/metrics"
)

// RouterConfig carries the optional pieces of the HTTP surface.
type RouterConfig struct {
	Handler        *handlers.Handler
	Admin          *handlers.AdminHandler
	WS             nethttp.Handler
	MetricsHandler nethttp.Handler
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	CORSOrigins    []string
}

// NewRouter assembles the chi router with middleware and all routes.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(middleware.Logging(cfg.Logger, cfg.Recorder))

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", cfg.Handler.Health)
	r.Get("/ready", cfg.Handler.Ready)
	r.Get("/scoreboard", cfg.Handler.Scoreboard)
	r.Get("/standings", cfg.Handler.Standings)
	r.Get("/postseason", cfg.Handler.Postseason)

	if cfg.WS != nil {
		r.Get("/ws", cfg.WS.ServeHTTP)
	}
	if cfg.MetricsHandler != nil {
		r.Get("/metrics", cfg.MetricsHandler.ServeHTTP)
	}
	if cfg.Admin != nil {
		r.Post("/admin/snapshots/refresh", cfg.Admin.RefreshSnapshots)
	}

	return r
}
