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

func TestSitemapCmd_Run(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://example.com/a": moviePage,
		"https://example.com/b": titleOnlyPage,
	}

	t.Run("scrapes discovered pages up to limit", func(t *testing.T) {
		t.Parallel()

		var discovered string
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Format: main.FormatText,
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, baseURL string) ([]string, error) {
					discovered = baseURL
					return []string{"https://example.com/a", "https://example.com/b"}, nil
				},
			},
			Scraper: newScraper(pages),
		}
		cmd := &main.SitemapCmd{URL: "https://example.com", Limit: 1}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", discovered)
		assert.Contains(t, stderr.String(), "Scraping 1 pages")
		assert.Contains(t, stdout.String(), "The Rock")
		assert.NotContains(t, stdout.String(), "Untitled")
	})

	t.Run("applies include and exclude patterns", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Format: main.FormatText,
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
					return []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"}, nil
				},
			},
			Scraper: newScraper(pages),
		}
		cmd := &main.SitemapCmd{URL: "https://example.com", Include: []string{`/[ab]$`}, Exclude: []string{`/a$`}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Untitled")
		assert.NotContains(t, stdout.String(), "The Rock")
	})

	t.Run("rejects invalid pattern before discovery", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
					t.Fatal("discovery should not run")
					return nil, nil
				},
			},
		}
		cmd := &main.SitemapCmd{URL: "https://example.com", Include: []string{"("}}

		err := cmd.Run(deps)

		assert.Equal(t, ogp.EINVALID, ogp.ErrorCode(err))
	})

	t.Run("reports empty sitemap", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
					return []string{}, nil
				},
			},
		}
		cmd := &main.SitemapCmd{URL: "https://example.com"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "No pages found")
	})

	t.Run("returns discovery error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
					return nil, ogp.Errorf(ogp.EINVALID, "invalid base URL")
				},
			},
		}
		cmd := &main.SitemapCmd{URL: "::"}

		err := cmd.Run(deps)

		assert.Equal(t, ogp.EINVALID, ogp.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid base URL")
	})
}
