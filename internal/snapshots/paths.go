package snapshots

import (
	"fmt"
	"path/filepath"
)

type snapshotKind string

const (
	kindGames     snapshotKind = "games"
	kindStandings snapshotKind = "standings"
)

// GameSnapshotPath builds the path to a scoreboard snapshot for a date.
func GameSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, string(kindGames), fmt.Sprintf("%s.json", date))
}

// StandingsSnapshotPath builds the path to a standings snapshot for a season.
func StandingsSnapshotPath(basePath, season string) string {
	return filepath.Join(basePath, string(kindStandings), fmt.Sprintf("%s.json", season))
}

func snapshotPath(basePath string, kind snapshotKind, key string) string {
	return filepath.Join(basePath, string(kind), fmt.Sprintf("%s.json", key))
}
