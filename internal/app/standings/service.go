package standings

import (
	"context"
	"time"

	domain "mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/store"
	"mlb-scores-service/internal/timeutil"
)

// Store defines the contract for committing and reading the standings view.
type Store interface {
	BeginStandings() store.Ticket
	CommitStandings(ticket store.Ticket, season string, leagues []domain.LeagueStandings) bool
	Standings() (string, []domain.LeagueStandings)
}

// Service coordinates standings fetches and derives the postseason view.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// ResolveSeason fills in the current season for an empty request.
func (s *Service) ResolveSeason(season string) string {
	if season != "" {
		return season
	}
	return timeutil.SeasonYear(s.now().UTC())
}

// Standings returns the committed standings snapshot.
func (s *Service) Standings() domain.StandingsResponse {
	season, leagues := s.store.Standings()
	if leagues == nil {
		leagues = []domain.LeagueStandings{}
	}
	return domain.StandingsResponse{Season: season, Leagues: leagues}
}

// Postseason derives the seeded playoff picture from the committed
// standings snapshot.
func (s *Service) Postseason() domain.PostseasonResponse {
	season, leagues := s.store.Standings()
	return BuildPostseason(season, leagues)
}

// Refresh fetches standings for a season and commits them under a fresh
// ticket; superseded results are discarded, not installed.
func (s *Service) Refresh(ctx context.Context, provider providers.StandingsProvider, season string) (domain.StandingsResponse, bool, error) {
	season = s.ResolveSeason(season)
	ticket := s.store.BeginStandings()
	leagues, err := provider.FetchStandings(ctx, season)
	if err != nil {
		return domain.StandingsResponse{}, false, err
	}
	committed := s.store.CommitStandings(ticket, season, leagues)
	return domain.StandingsResponse{Season: season, Leagues: leagues}, committed, nil
}

// ReplaceStandings installs an already-fetched standings result, used
// when the snapshot syncer refreshes standings out of band.
func (s *Service) ReplaceStandings(season string, leagues []domain.LeagueStandings) {
	ticket := s.store.BeginStandings()
	s.store.CommitStandings(ticket, season, leagues)
}

// BuildPostseason seeds every league in a standings snapshot.
func BuildPostseason(season string, leagues []domain.LeagueStandings) domain.PostseasonResponse {
	out := domain.PostseasonResponse{Season: season, Leagues: []domain.LeagueSeeding{}}
	for _, league := range leagues {
		out.Leagues = append(out.Leagues, domain.LeagueSeeding{
			LeagueID: league.LeagueID,
			League:   league.League,
			Seeds:    domain.SeedLeague(league.Teams),
		})
	}
	return out
}
