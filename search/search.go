// Package search orchestrates drawing lookups across backends.
package search

import (
	"context"
	"errors"

	"github.com/fwojciec/drawfind"
	"github.com/google/uuid"
)

// Searcher tries each resolver in priority order and stops at the first
// one that finds the drawing. A failing resolver never aborts the search;
// its error is recorded in the report and the next resolver is tried.
type Searcher struct {
	Resolvers []drawfind.Resolver
}

// NewSearcher creates a Searcher trying resolvers in the given order.
func NewSearcher(resolvers ...drawfind.Resolver) *Searcher {
	return &Searcher{Resolvers: resolvers}
}

// Search looks up req.Code. Requests without an ID are assigned one, and
// the ID is passed to every resolver through the context.
//
// The returned error is non-nil only when ctx is canceled, which is how a
// caller stops a search in progress; the partial report is still returned.
// A search in which every backend failed returns a report without Result.
func (s *Searcher) Search(ctx context.Context, req drawfind.Request) (*drawfind.Report, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	ctx = drawfind.NewContextWithRequestID(ctx, req.ID)

	report := &drawfind.Report{
		RequestID: req.ID,
		Code:      req.Code,
	}

	for _, r := range s.Resolvers {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result, err := r.Resolve(ctx, req.Code)
		if err == nil && (result == nil || result.Latest.Empty()) {
			err = drawfind.Errorf(drawfind.ENOFILES, "no files found for %q", req.Code)
		}
		report.Attempts = append(report.Attempts, drawfind.Attempt{Backend: r.Backend(), Err: err})

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return report, ctxErr
			}
			continue
		}

		report.Result = result
		return report, nil
	}

	return report, nil
}
