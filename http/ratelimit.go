package http

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/drawfind"
	"golang.org/x/time/rate"
)

var _ drawfind.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces requests per archive host. Index pages and .tif
// downloads for one host draw from the same token bucket, so packaging a
// drawing cannot flood the server a search is still listing.
//
// Hosts are compared case-insensitively, with default ports removed:
// "RIO1WEB:80" and "rio1web" share a bucket.
type DomainLimiter struct {
	rps float64

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter creates a limiter allowing rps requests per second to
// each host, without bursts. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:   rps,
		hosts: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	if d.rps <= 0 {
		return ctx.Err()
	}
	return d.bucket(hostKey(host)).Wait(ctx)
}

func (d *DomainLimiter) bucket(key string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.hosts[key]
	if !ok {
		l = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.hosts[key] = l
	}
	return l
}

func hostKey(host string) string {
	host = strings.ToLower(host)
	host = strings.TrimSuffix(host, ":80")
	return strings.TrimSuffix(host, ":443")
}
