package mock

import (
	"context"

	"github.com/fwojciec/ogp"
)

var _ ogp.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of ogp.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ ogp.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of ogp.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ ogp.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of ogp.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
