package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"mlb-scores-service/internal/domain/games"
	domainstandings "mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/snapshots"
	"mlb-scores-service/internal/testutil"
)

func newAdminFixture(t *testing.T, token string) (*AdminHandler, *testutil.StubProvider, string) {
	t.Helper()
	dir := t.TempDir()
	provider := &testutil.StubProvider{}
	// Pin the writer clock so the fixed request dates below stay inside
	// the retention window.
	clock := func() time.Time { return time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC) }
	writer := snapshots.NewWriter(dir, 14).WithClock(clock)
	return NewAdminHandler(writer, provider, token, nil), provider, dir
}

func adminRequest(token, query string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/snapshots/refresh"+query, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminRefreshRequiresToken(t *testing.T) {
	h, _, _ := newAdminFixture(t, "secret")

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("", ""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)

	rr = testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("wrong", ""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRefreshDisabledWithoutConfiguredToken(t *testing.T) {
	h, _, _ := newAdminFixture(t, "")
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("anything", ""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRefreshWritesSnapshot(t *testing.T) {
	h, provider, dir := newAdminFixture(t, "secret")
	provider.ScoreboardFn = func(_ context.Context, date string) (games.ScoreboardResponse, error) {
		return testutil.SampleScoreboard(date, 745804), nil
	}

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("secret", "?date=2025-07-04"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	if _, err := os.Stat(snapshots.GameSnapshotPath(dir, "2025-07-04")); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}

	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	if body["date"] != "2025-07-04" {
		t.Errorf("date = %v", body["date"])
	}
}

func TestAdminRefreshRejectsBadDate(t *testing.T) {
	h, _, _ := newAdminFixture(t, "secret")
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("secret", "?date=bogus"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestAdminRefreshUpstreamFailure(t *testing.T) {
	h, provider, _ := newAdminFixture(t, "secret")
	provider.ScoreboardFn = func(context.Context, string) (games.ScoreboardResponse, error) {
		return games.ScoreboardResponse{}, errors.New("upstream down")
	}

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("secret", "?date=2025-07-04"))
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestAdminRefreshIncludesStandings(t *testing.T) {
	h, provider, dir := newAdminFixture(t, "secret")
	provider.StandingsFn = func(context.Context, string) ([]domainstandings.LeagueStandings, error) {
		return testutil.SampleLeagues(), nil
	}

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshSnapshots), adminRequest("secret", "?date=2025-07-04&season=2025"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	if _, err := os.Stat(snapshots.StandingsSnapshotPath(dir, "2025")); err != nil {
		t.Fatalf("standings snapshot not written: %v", err)
	}
}
