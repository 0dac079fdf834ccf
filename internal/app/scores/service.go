package scores

import (
	"context"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/store"
)

// Store defines the contract for committing and reading the scoreboard view.
type Store interface {
	BeginScoreboard() store.Ticket
	CommitScoreboard(ticket store.Ticket, sb games.ScoreboardResponse) bool
	Scoreboard() games.ScoreboardResponse
}

// Service coordinates scoreboard fetches against the Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Scoreboard returns the committed scoreboard snapshot.
func (s *Service) Scoreboard() games.ScoreboardResponse {
	return s.store.Scoreboard()
}

// Refresh fetches the scoreboard for a date and commits it under a fresh
// ticket. A result that arrives after a newer Refresh has started is
// computed but discarded, keeping the view on the newest issued fetch.
func (s *Service) Refresh(ctx context.Context, provider providers.ScheduleProvider, date string) (games.ScoreboardResponse, bool, error) {
	ticket := s.store.BeginScoreboard()
	sb, err := provider.FetchScoreboard(ctx, date)
	if err != nil {
		return games.ScoreboardResponse{}, false, err
	}
	committed := s.store.CommitScoreboard(ticket, sb)
	return sb, committed, nil
}
