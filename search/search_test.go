package search_test

import (
	"context"
	"testing"

	"github.com/fwojciec/drawfind"
	"github.com/fwojciec/drawfind/mock"
	"github.com/fwojciec/drawfind/search"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func found(backend drawfind.Backend, revision string) *drawfind.Result {
	matches := []drawfind.FileMatch{{Name: "f.tif", Ref: "ref", Revision: revision, Page: drawfind.PageSingle}}
	return &drawfind.Result{
		Backend: backend,
		Matches: matches,
		Latest:  drawfind.SelectLatest(matches),
	}
}

func resolver(backend drawfind.Backend, calls *[]drawfind.Backend, fn func() (*drawfind.Result, error)) *mock.Resolver {
	return &mock.Resolver{
		BackendFn: func() drawfind.Backend { return backend },
		ResolveFn: func(ctx context.Context, code string) (*drawfind.Result, error) {
			*calls = append(*calls, backend)
			return fn()
		},
	}
}

// Story: Backends are tried in priority order
//
// The web archive is tried first, then the legacy share, then the current
// share. The first backend that finds the drawing ends the search.

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("stops at the first backend that finds the drawing", func(t *testing.T) {
		t.Parallel()

		// Given a web backend that finds the drawing
		var calls []drawfind.Backend
		s := search.NewSearcher(
			resolver(drawfind.BackendWeb, &calls, func() (*drawfind.Result, error) {
				return found(drawfind.BackendWeb, "B"), nil
			}),
			resolver(drawfind.BackendLegacy, &calls, func() (*drawfind.Result, error) {
				t.Fatal("legacy backend should not be tried")
				return nil, nil
			}),
		)

		// When searching
		report, err := s.Search(context.Background(), drawfind.Request{Code: "180-570-542"})

		// Then only the web backend ran and its result is reported
		require.NoError(t, err)
		require.True(t, report.Found())
		assert.Equal(t, drawfind.BackendWeb, report.Result.Backend)
		assert.Equal(t, []drawfind.Backend{drawfind.BackendWeb}, calls)
		assert.Empty(t, report.Failures())
	})

	t.Run("falls back to the legacy share when the web folder is missing", func(t *testing.T) {
		t.Parallel()

		// Given a web backend without a "180" folder
		var calls []drawfind.Backend
		s := search.NewSearcher(
			resolver(drawfind.BackendWeb, &calls, func() (*drawfind.Result, error) {
				return nil, drawfind.Errorf(drawfind.ENOFOLDER, "no folder found for prefix %q", "180")
			}),
			resolver(drawfind.BackendLegacy, &calls, func() (*drawfind.Result, error) {
				return found(drawfind.BackendLegacy, "A"), nil
			}),
			resolver(drawfind.BackendCurrent, &calls, func() (*drawfind.Result, error) {
				return found(drawfind.BackendCurrent, "C"), nil
			}),
		)

		// When searching
		report, err := s.Search(context.Background(), drawfind.Request{Code: "180-570-542"})

		// Then the legacy share answers and the web failure is recorded
		require.NoError(t, err)
		require.True(t, report.Found())
		assert.Equal(t, drawfind.BackendLegacy, report.Result.Backend)
		assert.Equal(t, []drawfind.Backend{drawfind.BackendWeb, drawfind.BackendLegacy}, calls)

		failures := report.Failures()
		require.Len(t, failures, 1)
		assert.Equal(t, drawfind.BackendWeb, failures[0].Backend)
		assert.Equal(t, drawfind.ENOFOLDER, drawfind.ErrorCode(failures[0].Err))
	})

	t.Run("reports every failure when no backend finds the drawing", func(t *testing.T) {
		t.Parallel()

		var calls []drawfind.Backend
		s := search.NewSearcher(
			resolver(drawfind.BackendWeb, &calls, func() (*drawfind.Result, error) {
				return nil, drawfind.Errorf(drawfind.EFETCH, "HTTP 500")
			}),
			resolver(drawfind.BackendLegacy, &calls, func() (*drawfind.Result, error) {
				return nil, drawfind.Errorf(drawfind.ENOFILES, "no files")
			}),
			resolver(drawfind.BackendCurrent, &calls, func() (*drawfind.Result, error) {
				return nil, drawfind.Errorf(drawfind.ENOFILES, "no files")
			}),
		)

		report, err := s.Search(context.Background(), drawfind.Request{Code: "180-570-542"})

		require.NoError(t, err)
		assert.False(t, report.Found())
		require.Len(t, report.Failures(), 3)
		assert.Equal(t, drawfind.EFETCH, drawfind.ErrorCode(report.Failures()[0].Err))
		assert.Equal(t, drawfind.BackendCurrent, report.Failures()[2].Backend)
	})

	t.Run("treats an empty result as no files found", func(t *testing.T) {
		t.Parallel()

		var calls []drawfind.Backend
		s := search.NewSearcher(
			resolver(drawfind.BackendWeb, &calls, func() (*drawfind.Result, error) {
				return &drawfind.Result{Backend: drawfind.BackendWeb}, nil
			}),
			resolver(drawfind.BackendLegacy, &calls, func() (*drawfind.Result, error) {
				return found(drawfind.BackendLegacy, "A"), nil
			}),
		)

		report, err := s.Search(context.Background(), drawfind.Request{Code: "180-570-542"})

		require.NoError(t, err)
		assert.Equal(t, drawfind.BackendLegacy, report.Result.Backend)
		assert.Equal(t, drawfind.ENOFILES, drawfind.ErrorCode(report.Failures()[0].Err))
	})

	t.Run("stops when the context is canceled between backends", func(t *testing.T) {
		t.Parallel()

		// Given a web backend during which the user stops the search
		ctx, cancel := context.WithCancel(context.Background())
		var calls []drawfind.Backend
		s := search.NewSearcher(
			resolver(drawfind.BackendWeb, &calls, func() (*drawfind.Result, error) {
				cancel()
				return nil, drawfind.Errorf(drawfind.ENOFOLDER, "no folder")
			}),
			resolver(drawfind.BackendLegacy, &calls, func() (*drawfind.Result, error) {
				return found(drawfind.BackendLegacy, "A"), nil
			}),
		)

		// When searching
		report, err := s.Search(ctx, drawfind.Request{Code: "180-570-542"})

		// Then no further backend runs and the partial report is returned
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, []drawfind.Backend{drawfind.BackendWeb}, calls)
		assert.False(t, report.Found())
		assert.Len(t, report.Attempts, 1)
	})

	t.Run("returns the context error when a backend is interrupted", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		var calls []drawfind.Backend
		s := search.NewSearcher(
			resolver(drawfind.BackendWeb, &calls, func() (*drawfind.Result, error) {
				cancel()
				return nil, context.Canceled
			}),
		)

		_, err := s.Search(ctx, drawfind.Request{Code: "180-570-542"})

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("assigns a request ID when none is given", func(t *testing.T) {
		t.Parallel()

		s := search.NewSearcher()

		report, err := s.Search(context.Background(), drawfind.Request{Code: "180-570-542"})

		require.NoError(t, err)
		_, parseErr := uuid.Parse(report.RequestID)
		assert.NoError(t, parseErr)
		assert.Equal(t, "180-570-542", report.Code)
	})

	t.Run("passes the request ID to every resolver", func(t *testing.T) {
		t.Parallel()

		var seen []string
		record := func(backend drawfind.Backend, err error) *mock.Resolver {
			return &mock.Resolver{
				BackendFn: func() drawfind.Backend { return backend },
				ResolveFn: func(ctx context.Context, code string) (*drawfind.Result, error) {
					seen = append(seen, drawfind.RequestIDFromContext(ctx))
					if err != nil {
						return nil, err
					}
					return found(backend, "A"), nil
				},
			}
		}
		s := search.NewSearcher(
			record(drawfind.BackendWeb, drawfind.Errorf(drawfind.ENOFOLDER, "no folder")),
			record(drawfind.BackendLegacy, nil),
		)

		report, err := s.Search(context.Background(), drawfind.Request{Code: "180-570-542"})

		require.NoError(t, err)
		require.NotEmpty(t, report.RequestID)
		assert.Equal(t, []string{report.RequestID, report.RequestID}, seen)
	})

	t.Run("keeps a caller supplied request ID", func(t *testing.T) {
		t.Parallel()

		s := search.NewSearcher()

		report, err := s.Search(context.Background(), drawfind.Request{ID: "req-1", Code: "180-570-542"})

		require.NoError(t, err)
		assert.Equal(t, "req-1", report.RequestID)
	})
}
