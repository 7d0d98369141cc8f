package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/ogp"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ogp.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements ogp.SnapshotService using SQLite.
// Metadata and validation errors are stored as JSON columns.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// CreateSnapshot stores a new snapshot. It assigns ID, and FetchedAt when
// the snapshot has none.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *ogp.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	metadata, err := json.Marshal(snap.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	fieldErrors := snap.Errors
	if fieldErrors == nil {
		fieldErrors = []ogp.FieldError{}
	}
	errs, err := json.Marshal(fieldErrors)
	if err != nil {
		return fmt.Errorf("failed to encode errors: %w", err)
	}

	snap.ID = uuid.New().String()
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = time.Now()
	}
	snap.FetchedAt = snap.FetchedAt.UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, source_url, content_hash, title, metadata, errors, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, snap.ID, snap.SourceURL, snap.ContentHash, snap.Metadata.Title, string(metadata), string(errs),
		snap.FetchedAt.Format(timeLayout))

	return err
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*ogp.Snapshot, error) {
	snaps, err := s.FindSnapshots(ctx, ogp.SnapshotFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, ogp.Errorf(ogp.ENOTFOUND, "snapshot not found")
	}
	return snaps[0], nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter ogp.SnapshotFilter) ([]*ogp.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, content_hash, metadata, errors, fetched_at FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")

	// SQLite requires LIMIT before OFFSET; -1 means no limit.
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snaps := []*ogp.Snapshot{}
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snaps, nil
}

// DeleteSnapshot permanently removes a snapshot.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ogp.Errorf(ogp.ENOTFOUND, "snapshot not found")
	}
	return nil
}

func scanSnapshot(rows *sql.Rows) (*ogp.Snapshot, error) {
	var snap ogp.Snapshot
	var metadata, errs, fetchedAt string

	if err := rows.Scan(&snap.ID, &snap.SourceURL, &snap.ContentHash, &metadata, &errs, &fetchedAt); err != nil {
		return nil, err
	}

	snap.Metadata = &ogp.Metadata{}
	if err := json.Unmarshal([]byte(metadata), snap.Metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	if err := json.Unmarshal([]byte(errs), &snap.Errors); err != nil {
		return nil, fmt.Errorf("failed to decode errors: %w", err)
	}
	if len(snap.Errors) == 0 {
		snap.Errors = nil
	}

	t, err := time.Parse(timeLayout, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}
	snap.FetchedAt = t

	return &snap, nil
}
