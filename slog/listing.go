// Package slog provides logging decorators for drawfind services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/drawfind"
)

// Ensure LoggingListingSource implements drawfind.ListingSource.
var _ drawfind.ListingSource = (*LoggingListingSource)(nil)

// LoggingListingSource wraps a ListingSource with logging.
type LoggingListingSource struct {
	next   drawfind.ListingSource
	logger *slog.Logger
}

// NewLoggingListingSource creates a new LoggingListingSource.
func NewLoggingListingSource(next drawfind.ListingSource, logger *slog.Logger) *LoggingListingSource {
	return &LoggingListingSource{next: next, logger: logger}
}

// List delegates to the wrapped source and logs the operation.
func (s *LoggingListingSource) List(ctx context.Context, location string) (entries []drawfind.DirectoryEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("list",
			"request_id", drawfind.RequestIDFromContext(ctx),
			"location", location,
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.List(ctx, location)
}
