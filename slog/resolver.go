package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/drawfind"
)

// Ensure LoggingResolver implements drawfind.Resolver.
var _ drawfind.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging.
type LoggingResolver struct {
	next   drawfind.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next drawfind.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Backend delegates to the wrapped resolver.
func (r *LoggingResolver) Backend() drawfind.Backend {
	return r.next.Backend()
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, code string) (result *drawfind.Result, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"request_id", drawfind.RequestIDFromContext(ctx),
			"backend", r.next.Backend(),
			"code", code,
			"duration", time.Since(begin),
		}
		if result != nil {
			attrs = append(attrs,
				"matches", len(result.Matches),
				"revision", result.Latest.Revision,
			)
		}
		if err != nil {
			attrs = append(attrs, "error_code", drawfind.ErrorCode(err), "err", err)
		}
		r.logger.Info("resolve", attrs...)
	}(time.Now())
	return r.next.Resolve(ctx, code)
}
