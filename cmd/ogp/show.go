package main

import (
	"fmt"

	"github.com/fwojciec/ogp"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	snap, err := deps.Snapshots.FindSnapshotByID(deps.Ctx, c.ID)
	if ogp.ErrorCode(err) == ogp.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: snapshot %q not found. Use 'ogp list' to see saved snapshots.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogp.ErrorMessage(err))
		return err
	}

	return writeRecord(deps.Stdout, deps.Format, snapshotRecord(snap))
}
