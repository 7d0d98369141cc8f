package mock

import (
	"context"

	"github.com/fwojciec/ogp"
)

var _ ogp.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of ogp.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn   func(ctx context.Context, s *ogp.Snapshot) error
	FindSnapshotByIDFn func(ctx context.Context, id string) (*ogp.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter ogp.SnapshotFilter) ([]*ogp.Snapshot, error)
	DeleteSnapshotFn   func(ctx context.Context, id string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *ogp.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snap)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*ogp.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter ogp.SnapshotFilter) ([]*ogp.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}
