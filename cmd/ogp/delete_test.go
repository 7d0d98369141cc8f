package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/ogp"
	main "github.com/fwojciec/ogp/cmd/ogp"
	"github.com/fwojciec/ogp/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes snapshot", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		err := (&main.DeleteCmd{ID: "snap-123"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "snap-123", deletedID)
		assert.Contains(t, stdout.String(), "Deleted snapshot snap-123")
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(_ context.Context, _ string) error {
				return ogp.Errorf(ogp.ENOTFOUND, "snapshot not found")
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshots,
		}

		err := (&main.DeleteCmd{ID: "nope"}).Run(deps)

		assert.Equal(t, ogp.ENOTFOUND, ogp.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}
