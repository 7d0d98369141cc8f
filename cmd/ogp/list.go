package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/ogp"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := ogp.SnapshotFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogp.ErrorMessage(err))
		return err
	}

	if deps.Format != FormatText {
		records := make([]record, 0, len(snaps))
		for _, s := range snaps {
			records = append(records, snapshotRecord(s))
		}
		return writeRecords(deps.Stdout, deps.Format, records)
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'ogp fetch --save' to create one.")
		return nil
	}

	for _, s := range snaps {
		status := "valid"
		if !s.Valid() {
			status = "invalid"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-7s  %s\n", s.ID, s.FetchedAt.Format(time.RFC3339), status, s.SourceURL)
	}

	return nil
}
