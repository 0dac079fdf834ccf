package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/poller"
	"mlb-scores-service/internal/providers/fixture"
	"mlb-scores-service/internal/testutil"
)

func testConfig() config.Config {
	cfg := config.Load()
	cfg.Provider = "fixture"
	cfg.Metrics.Enabled = false
	cfg.Snapshots.Enabled = false
	cfg.RedisURL = ""
	return cfg
}

func TestNewWiresHandler(t *testing.T) {
	srv := newServerWithMetrics(testConfig(), nil, nil, metrics.NewRecorder())

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestNewMountsAdminWhenTokenSet(t *testing.T) {
	cfg := testConfig()
	cfg.Snapshots.AdminToken = "secret"
	srv := newServerWithMetrics(cfg, nil, nil, metrics.NewRecorder())

	// Wrong token is rejected by the handler, not the router.
	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/admin/snapshots/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestScoreboardServedAfterPollerWarmup(t *testing.T) {
	srv := newServerWithProviderAndRecorder(testConfig(), fixture.New())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv.poller.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for {
		rr := testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
		if rr.Code == http.StatusOK {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("poller never became ready (last status %d)", rr.Code)
		}
		time.Sleep(10 * time.Millisecond)
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/scoreboard", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	_ = srv.poller.Stop(context.Background())
}

func newServerWithProviderAndRecorder(cfg config.Config, provider *fixture.Provider) *Server {
	return newServerWithMetrics(cfg, nil, provider, metrics.NewRecorder())
}

type stubHTTPServer struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	serveErr error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.started = true
	err := s.serveErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	select {} // block like a real server
}

func (s *stubHTTPServer) Shutdown(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	return nil
}

func (s *stubHTTPServer) Addr() string          { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler { return nil }

type stubPoller struct {
	started bool
	stopped bool
}

func (p *stubPoller) Start(context.Context)      { p.started = true }
func (p *stubPoller) Stop(context.Context) error { p.stopped = true; return nil }
func (p *stubPoller) Status() poller.Status      { return poller.Status{} }

func TestRunStopsOnServerError(t *testing.T) {
	httpSrv := &stubHTTPServer{serveErr: errors.New("bind failed")}
	plr := &stubPoller{}
	srv := newServerWithDeps(testConfig(), nil, httpSrv, plr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after server error")
	}

	if !plr.started || !plr.stopped {
		t.Errorf("poller lifecycle: started=%v stopped=%v", plr.started, plr.stopped)
	}
	httpSrv.mu.Lock()
	defer httpSrv.mu.Unlock()
	if !httpSrv.stopped {
		t.Error("http server not shut down")
	}
}

func TestProviderFactorySelectsFixture(t *testing.T) {
	cfg := testConfig()
	cfg.Provider = "unknown-provider"

	p := newProviderFactory(nil, nil).build(cfg)
	sb, err := p.FetchScoreboard(context.Background(), "2025-07-04")
	if err != nil {
		t.Fatalf("fixture fetch: %v", err)
	}
	if len(sb.Games) == 0 {
		t.Error("fixture provider returned no games")
	}
	if closer, ok := p.(interface{ Close() }); ok {
		closer.Close()
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("StatsAPI", nil); got != "statsapi" {
		t.Errorf("explicit name = %q", got)
	}
	if got := normalizeProviderName("", fixture.New()); got == "" || got == "provider" {
		t.Errorf("derived name = %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Errorf("fallback name = %q", got)
	}
}
