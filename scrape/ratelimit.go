package scrape

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/ogp"
	"golang.org/x/time/rate"
)

var _ ogp.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each host of a batch. Hosts are
// compared by lower-cased name without port, so "Example.com" and
// "example.com:443" share one token bucket.
type DomainLimiter struct {
	limit rate.Limit

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter allows rps requests per second to each host, with no
// bursts. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &DomainLimiter{
		limit: limit,
		hosts: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to host is allowed. host may carry a port.
// It fails early when ctx ends, or when ctx's deadline falls before the
// request would be allowed.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	if d.limit == rate.Inf {
		return ctx.Err()
	}
	return d.bucket(hostKey(host)).Wait(ctx)
}

func (d *DomainLimiter) bucket(key string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.hosts[key]
	if !ok {
		l = rate.NewLimiter(d.limit, 1)
		d.hosts[key] = l
	}
	return l
}

func hostKey(host string) string {
	if name, _, err := net.SplitHostPort(host); err == nil {
		host = name
	}
	return strings.ToLower(host)
}
