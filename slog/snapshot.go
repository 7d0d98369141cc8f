package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ogp"
)

// Ensure LoggingSnapshotService implements ogp.SnapshotService.
var _ ogp.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService with debug logging.
type LoggingSnapshotService struct {
	next   ogp.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next ogp.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

// CreateSnapshot delegates to the wrapped service and logs the new ID.
func (s *LoggingSnapshotService) CreateSnapshot(ctx context.Context, snap *ogp.Snapshot) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create snapshot",
			"id", snap.ID,
			"url", snap.SourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSnapshot(ctx, snap)
}

// FindSnapshotByID delegates to the wrapped service and logs the lookup.
func (s *LoggingSnapshotService) FindSnapshotByID(ctx context.Context, id string) (snap *ogp.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find snapshot",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSnapshotByID(ctx, id)
}

// FindSnapshots delegates to the wrapped service and logs the result count.
func (s *LoggingSnapshotService) FindSnapshots(ctx context.Context, filter ogp.SnapshotFilter) (snaps []*ogp.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find snapshots",
			"count", len(snaps),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSnapshots(ctx, filter)
}

// DeleteSnapshot delegates to the wrapped service and logs the deletion.
func (s *LoggingSnapshotService) DeleteSnapshot(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete snapshot",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSnapshot(ctx, id)
}
