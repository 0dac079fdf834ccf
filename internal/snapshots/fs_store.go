package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadScoreboard(date string) (games.ScoreboardResponse, error)
	LoadStandings(season string) (standings.StandingsResponse, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadScoreboard reads a scoreboard snapshot for the given date
// (YYYY-MM-DD) from {basePath}/games/{date}.json.
func (s *FSStore) LoadScoreboard(date string) (games.ScoreboardResponse, error) {
	var payload games.ScoreboardResponse
	if err := s.load(kindGames, date, &payload); err != nil {
		return games.ScoreboardResponse{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	if payload.Games == nil {
		payload.Games = []games.GameSummary{}
	}
	return payload, nil
}

// LoadStandings reads a standings snapshot for the given season from
// {basePath}/standings/{season}.json.
func (s *FSStore) LoadStandings(season string) (standings.StandingsResponse, error) {
	var payload standings.StandingsResponse
	if err := s.load(kindStandings, season, &payload); err != nil {
		return standings.StandingsResponse{}, err
	}
	if payload.Season == "" {
		payload.Season = season
	}
	return payload, nil
}

func (s *FSStore) load(kind snapshotKind, key string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if key == "" {
		return errors.New("snapshot key required")
	}
	f, err := os.Open(snapshotPath(s.basePath, kind, key))
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(payload)
}
