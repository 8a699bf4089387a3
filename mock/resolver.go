package mock

import (
	"context"
	"io"

	"github.com/fwojciec/drawfind"
)

var _ drawfind.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of drawfind.Resolver.
type Resolver struct {
	BackendFn func() drawfind.Backend
	ResolveFn func(ctx context.Context, code string) (*drawfind.Result, error)
}

func (r *Resolver) Backend() drawfind.Backend {
	return r.BackendFn()
}

func (r *Resolver) Resolve(ctx context.Context, code string) (*drawfind.Result, error) {
	return r.ResolveFn(ctx, code)
}

var _ drawfind.Packager = (*Packager)(nil)

// Packager is a mock implementation of drawfind.Packager.
type Packager struct {
	PackageFn func(ctx context.Context, w io.Writer, refs []string) error
}

func (p *Packager) Package(ctx context.Context, w io.Writer, refs []string) error {
	return p.PackageFn(ctx, w, refs)
}
