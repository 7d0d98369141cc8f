package main

import (
	"fmt"

	"github.com/fwojciec/ogp"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	// Compile filters before discovery so bad patterns fail fast.
	filter, err := ogp.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogp.ErrorMessage(err))
		return err
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	urls = filter.Apply(urls)
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "No pages found in sitemap.")
		return nil
	}

	if c.Limit > 0 && len(urls) > c.Limit {
		urls = urls[:c.Limit]
	}
	fmt.Fprintf(deps.Stderr, "Scraping %d pages\n", len(urls))

	return scrapeURLs(deps, urls)
}
