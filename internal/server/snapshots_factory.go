package server

import (
	"log/slog"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
	syncer *snapshots.Syncer
}

func buildSnapshots(cfg config.Config, provider providers.DataProvider, sink snapshots.StandingsSink, logger *slog.Logger) snapshotComponents {
	basePath := cfg.Snapshots.SnapshotFolder
	writer := snapshots.NewWriter(basePath, cfg.Snapshots.RetentionDays)
	store := snapshots.NewFSStore(basePath)
	syncer := snapshots.NewSyncer(provider, writer, snapshots.SyncConfig{
		Enabled:      cfg.Snapshots.Enabled,
		Days:         cfg.Snapshots.Days,
		FutureDays:   cfg.Snapshots.FutureDays,
		Interval:     cfg.Snapshots.Interval,
		DailyHourUTC: cfg.Snapshots.DailyHourUTC,
	}, logger, sink)

	return snapshotComponents{
		store:  store,
		writer: writer,
		syncer: syncer,
	}
}
