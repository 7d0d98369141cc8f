package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/ogp"
	"github.com/fwojciec/ogp/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Format    string
	Strict    bool
	Parser    ogp.Parser
	Snapshots ogp.SnapshotService
	Sitemaps  ogp.SitemapService
	Scraper   *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Format  string `short:"o" enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)"`
	Strict  bool   `help:"Exit with an error when a page lacks required properties"`
	Verbose bool   `short:"v" help:"Log operations to stderr"`

	Parse   ParseCmd   `cmd:"" help:"Extract metadata from an HTML file or stdin"`
	Fetch   FetchCmd   `cmd:"" help:"Fetch pages and extract their metadata"`
	Sitemap SitemapCmd `cmd:"" help:"Extract metadata from every page in a site's sitemap"`
	List    ListCmd    `cmd:"" help:"List saved snapshots"`
	Show    ShowCmd    `cmd:"" help:"Show a saved snapshot"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved snapshot"`
}

// ScrapeOptions are the flags shared by commands that fetch pages.
type ScrapeOptions struct {
	Browser     bool          `short:"b" help:"Render pages in headless Chrome"`
	Save        bool          `short:"s" help:"Store snapshots in the database"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64       `short:"r" default:"1" help:"Requests per second to each host (0 for no limit)"`
	Timeout     time.Duration `default:"10s" help:"Per-page fetch timeout"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File string `arg:"" optional:"" default:"-" help:"HTML file, or - for stdin"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs []string `arg:"" name:"url" help:"Page URLs"`

	ScrapeOptions `embed:""`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	URL     string   `arg:"" help:"Site URL; only pages under its path are scraped"`
	Include []string `short:"i" help:"Only scrape URLs matching this regex (repeatable)"`
	Exclude []string `short:"x" help:"Skip URLs matching this regex (repeatable)"`
	Limit   int      `short:"n" help:"Scrape at most this many pages (0 for all)"`

	ScrapeOptions `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only snapshots of this page URL"`
	Limit int    `short:"n" default:"20" help:"Maximum snapshots to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Snapshot ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Snapshot ID"`
}
