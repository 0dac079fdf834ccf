package store

import (
	"sync"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
)

// Ticket identifies one issued fetch for a view. A commit is accepted only
// while its ticket is still the most recently issued one, so at most one
// fetch's result lands per view and it is always the newest that completes.
type Ticket uint64

// MemoryStore keeps thread-safe snapshots of the scoreboard and standings
// views. Every snapshot is replaced wholesale; nothing is mutated in place.
type MemoryStore struct {
	mu sync.RWMutex

	scoreboardTicket Ticket
	scoreboard       games.ScoreboardResponse

	standingsTicket Ticket
	standingsSeason string
	standings       []standings.LeagueStandings
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// BeginScoreboard issues a ticket for a new scoreboard fetch, superseding
// any fetch still in flight.
func (s *MemoryStore) BeginScoreboard() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scoreboardTicket++
	return s.scoreboardTicket
}

// CommitScoreboard installs a scoreboard snapshot if the ticket is still
// current. Returns false when the result was superseded and discarded.
func (s *MemoryStore) CommitScoreboard(ticket Ticket, sb games.ScoreboardResponse) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket != s.scoreboardTicket {
		return false
	}
	s.scoreboard = sb
	return true
}

// Scoreboard returns the committed scoreboard snapshot.
func (s *MemoryStore) Scoreboard() games.ScoreboardResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scoreboard
}

// BeginStandings issues a ticket for a new standings fetch.
func (s *MemoryStore) BeginStandings() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.standingsTicket++
	return s.standingsTicket
}

// CommitStandings installs a standings snapshot if the ticket is still
// current.
func (s *MemoryStore) CommitStandings(ticket Ticket, season string, leagues []standings.LeagueStandings) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket != s.standingsTicket {
		return false
	}
	s.standingsSeason = season
	s.standings = leagues
	return true
}

// Standings returns the committed standings snapshot and its season.
func (s *MemoryStore) Standings() (string, []standings.LeagueStandings) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.standingsSeason, s.standings
}
