package main

import (
	"fmt"

	"github.com/fwojciec/ogp"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	err := deps.Snapshots.DeleteSnapshot(deps.Ctx, c.ID)
	if ogp.ErrorCode(err) == ogp.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: snapshot %q not found. Use 'ogp list' to see saved snapshots.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogp.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted snapshot %s\n", c.ID)
	return nil
}
