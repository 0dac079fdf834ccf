package standings

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/store"
)

type stubProvider struct {
	leagues []domain.LeagueStandings
	err     error
}

func (p *stubProvider) FetchStandings(ctx context.Context, season string) ([]domain.LeagueStandings, error) {
	return p.leagues, p.err
}

func sampleLeague() []domain.LeagueStandings {
	teams := []domain.TeamRecord{
		{TeamID: 1, Wins: 95, Losses: 67, Pct: 0.586, DivisionRank: 1},
		{TeamID: 2, Wins: 90, Losses: 72, Pct: 0.556, DivisionRank: 2},
	}
	return []domain.LeagueStandings{{
		LeagueID:  103,
		League:    "AL",
		Divisions: []domain.DivisionStanding{{Label: "AL East", Teams: teams}},
		Teams:     teams,
	}}
}

func TestRefreshCommitsAndResolvesSeason(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewService(mem)
	svc.now = func() time.Time { return time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC) }

	resp, committed, err := svc.Refresh(context.Background(), &stubProvider{leagues: sampleLeague()}, "")
	if err != nil || !committed {
		t.Fatalf("expected committed refresh, got committed=%v err=%v", committed, err)
	}
	if resp.Season != "2024" {
		t.Fatalf("expected resolved season 2024, got %q", resp.Season)
	}

	got := svc.Standings()
	if got.Season != "2024" || len(got.Leagues) != 1 {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestRefreshErrorSurfaces(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewService(mem)

	if _, _, err := svc.Refresh(context.Background(), &stubProvider{err: errors.New("down")}, "2024"); err == nil {
		t.Fatal("expected error")
	}
}

func TestStandingsEmptySnapshot(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	got := svc.Standings()
	if got.Leagues == nil || len(got.Leagues) != 0 {
		t.Fatalf("expected empty non-nil leagues, got %+v", got.Leagues)
	}
}

func TestPostseasonDerivesSeeding(t *testing.T) {
	mem := store.NewMemoryStore()
	svc := NewService(mem)

	if _, _, err := svc.Refresh(context.Background(), &stubProvider{leagues: sampleLeague()}, "2024"); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	post := svc.Postseason()
	if post.Season != "2024" || len(post.Leagues) != 1 {
		t.Fatalf("unexpected postseason %+v", post)
	}
	seeds := post.Leagues[0].Seeds
	if len(seeds) != 2 || seeds[0].Seed != 1 || !seeds[0].IsDivisionLeader {
		t.Fatalf("unexpected seeds %+v", seeds)
	}
	if seeds[1].Seed != 2 || seeds[1].IsDivisionLeader {
		t.Fatalf("unexpected second seed %+v", seeds[1])
	}
}

func TestBuildPostseasonEmpty(t *testing.T) {
	post := BuildPostseason("2024", nil)
	if post.Leagues == nil || len(post.Leagues) != 0 {
		t.Fatalf("expected empty non-nil leagues, got %+v", post.Leagues)
	}
}
