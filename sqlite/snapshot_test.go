package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/ogp"
	"github.com/fwojciec/ogp/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newSnapshot(sourceURL string, fetchedAt time.Time) *ogp.Snapshot {
	m := &ogp.Metadata{Title: "The Rock", Type: "video.movie", URL: sourceURL}
	m.AddImage("http://example.com/rock.jpg")
	m.Images[0].Width = "400"
	m.AddLocale("en_US")
	m.SetProperty("updated_time", "2024-01-01")
	return &ogp.Snapshot{
		SourceURL:   sourceURL,
		ContentHash: "abc123",
		Metadata:    m,
		FetchedAt:   fetchedAt,
	}
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := openDB(t)

		var count int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM snapshots").Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		require.Error(t, db.Open())
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(t.TempDir() + "/test.db")
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		assert.Equal(t, "wal", journalMode)
	})
}

func TestSnapshotService_CreateSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("round-trips metadata and errors", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(openDB(t))
		ctx := context.Background()
		fetchedAt := time.Date(2026, 3, 4, 5, 6, 7, 890, time.UTC)

		snap := newSnapshot("https://example.com/a", fetchedAt)
		snap.Errors = []ogp.FieldError{{Field: "image", Message: ogp.MissingMessage}}
		require.NoError(t, svc.CreateSnapshot(ctx, snap))
		require.NotEmpty(t, snap.ID)

		got, err := svc.FindSnapshotByID(ctx, snap.ID)

		require.NoError(t, err)
		assert.Equal(t, snap.ID, got.ID)
		assert.Equal(t, "https://example.com/a", got.SourceURL)
		assert.Equal(t, "abc123", got.ContentHash)
		assert.True(t, fetchedAt.Equal(got.FetchedAt))
		assert.Equal(t, snap.Errors, got.Errors)
		assert.False(t, got.Valid())
		assert.Equal(t, "The Rock", got.Metadata.Title)
		assert.Equal(t, []ogp.MediaItem{{URL: "http://example.com/rock.jpg", Width: "400"}}, got.Metadata.Images)
		assert.Equal(t, []string{"en_US"}, got.Metadata.Locales)
		assert.Equal(t, map[string]string{"updated_time": "2024-01-01"}, got.Metadata.Extensions)
	})

	t.Run("decoded metadata validates its own fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(openDB(t))
		ctx := context.Background()

		snap := newSnapshot("https://example.com/a", time.Now())
		require.NoError(t, svc.CreateSnapshot(ctx, snap))

		got, err := svc.FindSnapshotByID(ctx, snap.ID)

		require.NoError(t, err)
		assert.Nil(t, got.Errors)
		assert.True(t, got.Metadata.Valid())
	})

	t.Run("sets fetched time when missing", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(openDB(t))
		snap := newSnapshot("https://example.com/a", time.Time{})

		require.NoError(t, svc.CreateSnapshot(context.Background(), snap))

		assert.False(t, snap.FetchedAt.IsZero())
	})

	t.Run("rejects invalid snapshot", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(openDB(t))

		err := svc.CreateSnapshot(context.Background(), &ogp.Snapshot{Metadata: &ogp.Metadata{}})

		assert.Equal(t, ogp.EINVALID, ogp.ErrorCode(err))
	})
}

func TestSnapshotService_FindSnapshots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	seed := func(t *testing.T) *sqlite.SnapshotService {
		t.Helper()
		svc := sqlite.NewSnapshotService(openDB(t))
		require.NoError(t, svc.CreateSnapshot(ctx, newSnapshot("https://example.com/a", base)))
		require.NoError(t, svc.CreateSnapshot(ctx, newSnapshot("https://example.com/b", base.Add(time.Hour))))
		require.NoError(t, svc.CreateSnapshot(ctx, newSnapshot("https://example.com/a", base.Add(2*time.Hour))))
		return svc
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		snaps, err := seed(t).FindSnapshots(ctx, ogp.SnapshotFilter{})

		require.NoError(t, err)
		require.Len(t, snaps, 3)
		assert.True(t, base.Add(2*time.Hour).Equal(snaps[0].FetchedAt))
		assert.True(t, base.Add(time.Hour).Equal(snaps[1].FetchedAt))
		assert.True(t, base.Equal(snaps[2].FetchedAt))
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		url := "https://example.com/a"
		snaps, err := seed(t).FindSnapshots(ctx, ogp.SnapshotFilter{SourceURL: &url})

		require.NoError(t, err)
		require.Len(t, snaps, 2)
		for _, s := range snaps {
			assert.Equal(t, url, s.SourceURL)
		}
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		limited, err := svc.FindSnapshots(ctx, ogp.SnapshotFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Equal(t, "https://example.com/b", limited[0].SourceURL)

		offsetOnly, err := svc.FindSnapshots(ctx, ogp.SnapshotFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, offsetOnly, 1)
		assert.True(t, base.Equal(offsetOnly[0].FetchedAt))
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		url := "https://nowhere.example"
		snaps, err := seed(t).FindSnapshots(ctx, ogp.SnapshotFilter{SourceURL: &url})

		require.NoError(t, err)
		assert.NotNil(t, snaps)
		assert.Empty(t, snaps)
	})
}

func TestSnapshotService_FindSnapshotByID_NotFound(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewSnapshotService(openDB(t))

	_, err := svc.FindSnapshotByID(context.Background(), "missing")

	assert.Equal(t, ogp.ENOTFOUND, ogp.ErrorCode(err))
}

func TestSnapshotService_DeleteSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("removes snapshot", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(openDB(t))
		ctx := context.Background()
		snap := newSnapshot("https://example.com/a", time.Now())
		require.NoError(t, svc.CreateSnapshot(ctx, snap))

		require.NoError(t, svc.DeleteSnapshot(ctx, snap.ID))

		_, err := svc.FindSnapshotByID(ctx, snap.ID)
		assert.Equal(t, ogp.ENOTFOUND, ogp.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(openDB(t))

		err := svc.DeleteSnapshot(context.Background(), "missing")

		assert.Equal(t, ogp.ENOTFOUND, ogp.ErrorCode(err))
	})
}
