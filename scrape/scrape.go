// Package scrape fetches pages and captures their Open Graph metadata as
// snapshots, one page at a time or as a concurrent batch.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/ogp"
	"github.com/fwojciec/ogp/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages ScrapeAll processes at once.
const DefaultConcurrency = 4

// Scraper fetches pages, parses their Open Graph metadata and optionally
// stores the result.
type Scraper struct {
	Fetcher ogp.Fetcher
	Parser  ogp.Parser

	// RateLimiter throttles requests per host. Nil disables rate limiting.
	RateLimiter ogp.DomainLimiter

	// Snapshots stores every successful scrape. Nil disables storage.
	Snapshots ogp.SnapshotService

	// Concurrency bounds ScrapeAll. Defaults to DefaultConcurrency.
	Concurrency int

	// DedupFPRate is the chance that ScrapeAll treats a new URL as a repeat
	// and skips it. Defaults to bloom.DefaultFPRate.
	DedupFPRate float64

	// RetryDelays are the waits between fetch attempts.
	// Nil uses DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// Now returns the capture time. Defaults to time.Now.
	Now func() time.Time
}

// Scrape fetches pageURL and returns a snapshot of its metadata, including
// the required properties the page is missing.
//
// Transient fetch failures are retried. Application errors from the fetcher
// and parse failures (EINVALID, EMALFORMED) are not.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*ogp.Snapshot, error) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return nil, ogp.Errorf(ogp.EINVALID, "invalid page URL %q", pageURL)
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, pageURL, s.Fetcher.Fetch, delays)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	m, err := s.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	snap := &ogp.Snapshot{
		SourceURL:   pageURL,
		ContentHash: HashContent(html),
		Metadata:    m,
		Errors:      m.Errors(),
		FetchedAt:   now().UTC(),
	}

	if s.Snapshots != nil {
		if err := s.Snapshots.CreateSnapshot(ctx, snap); err != nil {
			return nil, fmt.Errorf("storing snapshot for %s: %w", pageURL, err)
		}
	}

	return snap, nil
}

// Result is the outcome of scraping one URL in a batch.
type Result struct {
	URL      string
	Snapshot *ogp.Snapshot
	Err      error
}

// Progress reports batch progress after each URL.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as URLs complete. Calls are not concurrent.
type ProgressFunc func(Progress)

// ScrapeAll scrapes urls concurrently. Repeated URLs are scraped once;
// repeats are found with a Bloom filter, so with probability DedupFPRate a
// distinct URL is skipped as well.
// Results follow the order of first occurrence in urls; a failed URL has
// its error in Result.Err and does not stop the batch. Only cancellation of
// ctx ends the batch early, in which case the remaining results carry the
// context error.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) []Result {
	urls = bloom.Dedup(urls, s.DedupFPRate)
	results := make([]Result, len(urls))

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type done struct {
		index  int
		result Result
	}
	doneCh := make(chan done)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				r := Result{URL: u}
				if err := gctx.Err(); err != nil {
					r.Err = err
				} else {
					r.Snapshot, r.Err = s.Scrape(gctx, u)
				}
				doneCh <- done{index: i, result: r}
				return nil
			})
		}
		_ = g.Wait()
		close(doneCh)
	}()

	var completed int
	for d := range doneCh {
		results[d.index] = d.result
		completed++
		if progress != nil {
			progress(Progress{
				URL:       d.result.URL,
				Completed: completed,
				Total:     len(urls),
				Err:       d.result.Err,
			})
		}
	}

	return results
}
