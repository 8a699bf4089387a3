package drawfind

import (
	"context"
	"io"
)

// Result is the outcome of a successful lookup in one backend.
type Result struct {
	Backend Backend
	Code    DrawingCode

	// Matches holds every file that satisfied the filename grammar,
	// across all revisions, in traversal order.
	Matches []FileMatch

	Latest Selection
}

// Resolver looks up a drawing code in a single backend.
type Resolver interface {
	// Backend identifies the lookup target.
	Backend() Backend

	// Resolve normalizes code for the backend, scans it and selects the
	// latest revision. Failures carry one of the codes EINVALID, EFETCH,
	// ENOFOLDER, ENOSUBFOLDER or ENOFILES.
	Resolve(ctx context.Context, code string) (*Result, error)
}

// Request is a single search for a drawing code.
type Request struct {
	ID   string
	Code string
}

// Attempt records one backend lookup made while serving a Request.
type Attempt struct {
	Backend Backend
	Err     error
}

// Report is the response to a Request.
type Report struct {
	RequestID string
	Code      string

	// Attempts lists the backends tried, in order. Every attempt but the
	// last one carries an error.
	Attempts []Attempt

	// Result is nil when no backend found the drawing.
	Result *Result
}

// Found reports whether any backend produced a result.
func (r *Report) Found() bool {
	return r.Result != nil
}

// Failures returns the attempts that ended in an error.
func (r *Report) Failures() []Attempt {
	var failed []Attempt
	for _, a := range r.Attempts {
		if a.Err != nil {
			failed = append(failed, a)
		}
	}
	return failed
}

// Packager bundles drawing files into a single archive.
type Packager interface {
	// Package writes an archive containing one entry per ref, named by
	// the ref's base file name, to w.
	Package(ctx context.Context, w io.Writer, refs []string) error
}
