package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ogp"
	"github.com/fwojciec/ogp/goquery"
	ogphttp "github.com/fwojciec/ogp/http"
	"github.com/fwojciec/ogp/rod"
	"github.com/fwojciec/ogp/scrape"
	ogpslog "github.com/fwojciec/ogp/slog"
	"github.com/fwojciec/ogp/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Input for "parse -". Defaults to os.Stdin.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SnapshotService ogp.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ogp"),
		kong.Description("Extract and validate Open Graph metadata."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ogp --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Format = cli.Format
	deps.Strict = cli.Strict
	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Parser = ogpslog.NewLoggingParser(goquery.NewParser(), deps.Logger)

	save := (cmd == "fetch" && cli.Fetch.Save) || (cmd == "sitemap" && cli.Sitemap.Save)
	if save || cmd == "list" || cmd == "show" || cmd == "delete" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set OGP_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.SnapshotService = ogpslog.NewLoggingSnapshotService(sqlite.NewSnapshotService(m.DB), deps.Logger)
		deps.Snapshots = m.SnapshotService
	}

	if cmd == "fetch" || cmd == "sitemap" {
		opts := cli.Fetch.ScrapeOptions
		if cmd == "sitemap" {
			opts = cli.Sitemap.ScrapeOptions
			deps.Sitemaps = ogpslog.NewLoggingSitemapService(ogphttp.NewSitemapService(nil), deps.Logger)
		}

		fetcher, err := newFetcher(opts, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		scraper := &scrape.Scraper{
			Fetcher:     ogpslog.NewLoggingFetcher(fetcher, deps.Logger),
			Parser:      deps.Parser,
			RateLimiter: scrape.NewDomainLimiter(opts.Rate),
			Concurrency: opts.Concurrency,
		}
		if save {
			scraper.Snapshots = deps.Snapshots
		}
		deps.Scraper = scraper
	}

	return kongCtx.Run(deps)
}

func newFetcher(opts ScrapeOptions, stderr io.Writer) (ogp.Fetcher, error) {
	if !opts.Browser {
		return ogphttp.NewFetcher(ogphttp.WithTimeout(opts.Timeout)), nil
	}
	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(opts.Timeout))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("OGP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ogp.db"
	}
	dir := filepath.Join(home, ".ogp")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ogp.db")
}
