package ogp

import (
	"context"
	"time"
)

// Snapshot is the Open Graph metadata of a page captured at a point in time.
type Snapshot struct {
	ID          string       `json:"id" yaml:"id"`
	SourceURL   string       `json:"sourceUrl" yaml:"source_url"`
	ContentHash string       `json:"contentHash" yaml:"content_hash"`
	Metadata    *Metadata    `json:"metadata" yaml:"metadata"`
	Errors      []FieldError `json:"errors,omitempty" yaml:"errors,omitempty"`
	FetchedAt   time.Time    `json:"fetchedAt" yaml:"fetched_at"`
}

// Valid reports whether the snapshot had no missing required properties
// when it was captured.
func (s *Snapshot) Valid() bool {
	return len(s.Errors) == 0
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "snapshot source URL required")
	}
	if s.Metadata == nil {
		return Errorf(EINVALID, "snapshot metadata required")
	}
	return nil
}

// SnapshotService represents a service for managing snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a new snapshot, assigning its ID.
	CreateSnapshot(ctx context.Context, s *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot.
	// Returns ENOTFOUND if the snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
