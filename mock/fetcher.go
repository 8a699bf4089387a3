package mock

import (
	"context"
	"io"

	"github.com/fwojciec/drawfind"
)

var _ drawfind.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of drawfind.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ drawfind.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of drawfind.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ drawfind.Opener = (*Opener)(nil)

// Opener is a mock implementation of drawfind.Opener.
type Opener struct {
	OpenFn func(ctx context.Context, ref string) (io.ReadCloser, error)
}

func (o *Opener) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	return o.OpenFn(ctx, ref)
}
