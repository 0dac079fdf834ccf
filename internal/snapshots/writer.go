package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
	"mlb-scores-service/internal/timeutil"
)

// Writer persists snapshots and the manifest with retention pruning.
// Scoreboards are keyed by date and pruned on a rolling window;
// standings are keyed by season and kept.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window
// retention for dated scoreboards.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// WithClock overrides the writer's time source. Retention pruning and
// manifest timestamps follow the injected clock.
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteScoreboardSnapshot writes the scoreboard for a date (YYYY-MM-DD)
// and prunes snapshots outside the retention window.
func (w *Writer) WriteScoreboardSnapshot(date string, snapshot games.ScoreboardResponse) error {
	if snapshot.Date == "" {
		snapshot.Date = date
	}
	sort.Slice(snapshot.Games, func(i, j int) bool {
		return snapshot.Games[i].ID < snapshot.Games[j].ID
	})
	return w.writeSnapshot(kindGames, date, snapshot)
}

// WriteStandingsSnapshot writes the standings for a season.
func (w *Writer) WriteStandingsSnapshot(season string, snapshot standings.StandingsResponse) error {
	if snapshot.Season == "" {
		snapshot.Season = season
	}
	return w.writeSnapshot(kindStandings, season, snapshot)
}

func (w *Writer) writeSnapshot(kind snapshotKind, key string, payload any) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if key == "" {
		return fmt.Errorf("snapshot key required")
	}

	target := snapshotPath(w.basePath, kind, key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(kind, key)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(kind, key)
}

func (w *Writer) updateManifest(kind snapshotKind, key string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)
	now := w.now().UTC()

	keys, err := w.listKeys(kind)
	if err != nil {
		return err
	}
	if !containsKey(keys, key) {
		keys = append(keys, key)
		sort.Strings(keys)
	}

	switch kind {
	case kindGames:
		pruned, err := w.pruneOldScoreboards(keys)
		if err != nil {
			return err
		}
		m.Games.Dates = pruned
		m.Games.LastRefreshed = now
		m.Retention.GamesDays = w.retentionDays
	case kindStandings:
		m.Standings.Seasons = keys
		m.Standings.LastRefreshed = now
	}

	return writeManifest(w.basePath, m)
}

func (w *Writer) listKeys(kind snapshotKind) ([]string, error) {
	dir := filepath.Join(w.basePath, string(kind))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		keys = append(keys, e.Name()[:len(e.Name())-len(".json")])
	}
	sort.Strings(keys)
	return keys, nil
}

func (w *Writer) pruneOldScoreboards(dates []string) ([]string, error) {
	now := w.now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(snapshotPath(w.basePath, kindGames, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep, nil
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
