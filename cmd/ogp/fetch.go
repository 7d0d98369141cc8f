package main

import (
	"fmt"

	"github.com/fwojciec/ogp/scrape"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	return scrapeURLs(deps, c.URLs)
}

// scrapeURLs scrapes urls, reports failures on stderr as they happen and
// prints the successful results once the batch is done.
func scrapeURLs(deps *Dependencies, urls []string) error {
	results := deps.Scraper.ScrapeAll(deps.Ctx, urls, func(p scrape.Progress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", p.URL, errorText(p.Err))
		}
	})

	records := make([]record, 0, len(results))
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		records = append(records, snapshotRecord(r.Snapshot))
	}

	if err := writeRecords(deps.Stdout, deps.Format, records); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(results))
	}
	return checkStrict(deps.Strict, records)
}
