package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/drawfind"
)

// Ensure LoggingPackager implements drawfind.Packager.
var _ drawfind.Packager = (*LoggingPackager)(nil)

// LoggingPackager wraps a Packager with logging.
type LoggingPackager struct {
	next   drawfind.Packager
	logger *slog.Logger
}

// NewLoggingPackager creates a new LoggingPackager.
func NewLoggingPackager(next drawfind.Packager, logger *slog.Logger) *LoggingPackager {
	return &LoggingPackager{next: next, logger: logger}
}

// Package delegates to the wrapped packager and logs the archive size.
func (p *LoggingPackager) Package(ctx context.Context, w io.Writer, refs []string) (err error) {
	cw := &countingWriter{w: w}
	defer func(begin time.Time) {
		p.logger.Info("package",
			"files", len(refs),
			"bytes", cw.n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Package(ctx, cw, refs)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
