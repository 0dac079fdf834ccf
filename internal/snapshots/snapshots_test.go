package snapshots

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/timeutil"
)

func intPtr(v int) *int { return &v }

func sampleScoreboard(date string) games.ScoreboardResponse {
	return games.ScoreboardResponse{
		Date: date,
		Games: []games.GameSummary{
			{
				ID:           745804,
				Status:       "Final",
				StatusDetail: "Final",
				IsFinal:      true,
				Home:         games.TeamSide{ID: 136, Name: "Seattle Mariners", Abbreviation: "SEA", Record: "85-77", Score: intPtr(4)},
				Away:         games.TeamSide{ID: 117, Name: "Houston Astros", Abbreviation: "HOU", Record: "88-73", Score: intPtr(2)},
			},
		},
	}
}

func TestWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	date := timeutil.FormatDate(time.Now().UTC())

	if err := w.WriteScoreboardSnapshot(date, sampleScoreboard(date)); err != nil {
		t.Fatalf("WriteScoreboardSnapshot: %v", err)
	}

	store := NewFSStore(dir)
	got, err := store.LoadScoreboard(date)
	if err != nil {
		t.Fatalf("LoadScoreboard: %v", err)
	}
	if got.Date != date {
		t.Errorf("date = %q, want %q", got.Date, date)
	}
	if len(got.Games) != 1 {
		t.Fatalf("games = %d, want 1", len(got.Games))
	}
	g := got.Games[0]
	if g.ID != 745804 || !g.IsFinal {
		t.Errorf("unexpected game: %+v", g)
	}
	if g.Home.Score == nil || *g.Home.Score != 4 {
		t.Errorf("home score = %v, want 4", g.Home.Score)
	}
}

func TestWriterStandingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	snap := standings.StandingsResponse{
		Season: "2025",
		Leagues: []standings.LeagueStandings{
			{
				LeagueID: 103,
				League:   "American League",
				Divisions: []standings.DivisionStanding{
					{
						Label: "AL West",
						Teams: []standings.TeamRecord{
							{TeamID: 136, Name: "Seattle Mariners", Wins: 90, Losses: 72, PctText: ".556"},
						},
					},
				},
			},
		},
	}
	if err := w.WriteStandingsSnapshot("2025", snap); err != nil {
		t.Fatalf("WriteStandingsSnapshot: %v", err)
	}

	got, err := NewFSStore(dir).LoadStandings("2025")
	if err != nil {
		t.Fatalf("LoadStandings: %v", err)
	}
	if got.Season != "2025" {
		t.Errorf("season = %q", got.Season)
	}
	if len(got.Leagues) != 1 || got.Leagues[0].LeagueID != 103 {
		t.Fatalf("unexpected leagues: %+v", got.Leagues)
	}
	if got.Leagues[0].Divisions[0].Label != "AL West" {
		t.Errorf("division label = %q", got.Leagues[0].Divisions[0].Label)
	}
}

func TestWriterPrunesOldScoreboards(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 3)
	now := time.Now().UTC()
	today := timeutil.FormatDate(now)
	stale := timeutil.FormatDate(now.AddDate(0, 0, -10))

	if err := w.WriteScoreboardSnapshot(stale, sampleScoreboard(stale)); err != nil {
		t.Fatalf("write stale: %v", err)
	}
	if err := w.WriteScoreboardSnapshot(today, sampleScoreboard(today)); err != nil {
		t.Fatalf("write today: %v", err)
	}

	if _, err := os.Stat(GameSnapshotPath(dir, stale)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("stale snapshot should be pruned, stat err = %v", err)
	}
	if _, err := os.Stat(GameSnapshotPath(dir, today)); err != nil {
		t.Errorf("today snapshot missing: %v", err)
	}

	m, err := readManifest(dir+"/manifest.json", 3)
	if err != nil {
		t.Fatalf("readManifest: %v", err)
	}
	for _, d := range m.Games.Dates {
		if d == stale {
			t.Errorf("manifest still lists pruned date %q", stale)
		}
	}
}

func TestWriterKeepsInWindowPastDates(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	w := NewWriter(dir, 14).WithClock(func() time.Time { return now })

	if err := w.WriteScoreboardSnapshot("2025-07-04", sampleScoreboard("2025-07-04")); err != nil {
		t.Fatalf("WriteScoreboardSnapshot: %v", err)
	}
	if _, err := os.Stat(GameSnapshotPath(dir, "2025-07-04")); err != nil {
		t.Errorf("in-window snapshot pruned: %v", err)
	}
}

func TestLoadScoreboardMissing(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadScoreboard("2025-07-04"); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}

type fakeProvider struct {
	scoreboards map[string]games.ScoreboardResponse
	fetched     []string
	standings   []standings.LeagueStandings
}

func (p *fakeProvider) FetchScoreboard(_ context.Context, date string) (games.ScoreboardResponse, error) {
	p.fetched = append(p.fetched, date)
	if sb, ok := p.scoreboards[date]; ok {
		return sb, nil
	}
	return games.NewScoreboardResponse(date, nil), nil
}

func (p *fakeProvider) FetchStandings(_ context.Context, season string) ([]standings.LeagueStandings, error) {
	return p.standings, nil
}

func TestSyncerBuildDates(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	w := NewWriter(dir, 14).WithClock(func() time.Time { return now })

	s := NewSyncer(&fakeProvider{}, w, SyncConfig{Enabled: true, Days: 4, FutureDays: 1, Interval: time.Millisecond}, nil, nil)

	// Seed one of the older dates so it is skipped.
	seeded := "2025-07-08"
	if err := w.WriteScoreboardSnapshot(seeded, sampleScoreboard(seeded)); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	dates := s.buildDates(now)
	want := []string{"2025-07-10", "2025-07-09", "2025-07-07", "2025-07-11"}
	if len(dates) != len(want) {
		t.Fatalf("dates = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], want[i])
		}
	}
}

func TestSyncerBackfillWritesSnapshots(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	now := time.Now().UTC()
	today := timeutil.FormatDate(now)

	provider := &fakeProvider{
		scoreboards: map[string]games.ScoreboardResponse{
			today: sampleScoreboard(today),
		},
	}
	s := NewSyncer(provider, w, SyncConfig{Enabled: true, Days: 2, Interval: time.Millisecond}, nil, nil)

	s.backfill(context.Background(), now)

	if len(provider.fetched) != 2 {
		t.Fatalf("fetched %v, want 2 dates", provider.fetched)
	}
	if _, err := os.Stat(GameSnapshotPath(dir, today)); err != nil {
		t.Errorf("today snapshot missing: %v", err)
	}
}

func TestShouldRefreshStandings(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	s := NewSyncer(&fakeProvider{}, w, SyncConfig{Enabled: true, StandingsRefreshHours: 6}, nil, nil)

	now := time.Now().UTC()
	if !s.shouldRefreshStandings(now) {
		t.Fatal("should refresh when no manifest exists")
	}

	if err := w.WriteStandingsSnapshot("2025", standings.StandingsResponse{Season: "2025"}); err != nil {
		t.Fatalf("write standings: %v", err)
	}
	if s.shouldRefreshStandings(now) {
		t.Error("should not refresh immediately after a write")
	}
	if !s.shouldRefreshStandings(now.Add(7 * time.Hour)) {
		t.Error("should refresh after the refresh window elapses")
	}
}
