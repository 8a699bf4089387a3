package scan

import (
	"context"
	"regexp"

	"github.com/fwojciec/drawfind"
)

var _ drawfind.Resolver = (*LocalScanner)(nil)

// LocalScanner finds drawings anywhere below the root of a network share.
// Kind selects how codes are normalized: drawfind.BackendLegacy for the
// archive of retired drawings, drawfind.BackendCurrent for the active one.
type LocalScanner struct {
	Source drawfind.ListingSource
	Root   string
	Kind   drawfind.Backend
}

// Backend returns the configured backend kind.
func (s *LocalScanner) Backend() drawfind.Backend {
	return s.Kind
}

// Resolve normalizes code for the share, walks it and selects the latest
// revision. Files without a revision letter group under the empty label.
func (s *LocalScanner) Resolve(ctx context.Context, code string) (*drawfind.Result, error) {
	normalized, err := drawfind.Normalize(code, s.Kind)
	if err != nil {
		return nil, err
	}

	matches, err := s.Scan(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return &drawfind.Result{
		Backend: s.Kind,
		Code:    normalized,
		Matches: matches,
		Latest:  drawfind.SelectLatest(matches),
	}, nil
}

// Scan walks every directory below the root and returns the files named
// CODE(-PAGE)?-?REVISION?.tif. Each directory's files come before its
// subdirectories are visited. Subdirectories that cannot be listed are
// skipped.
//
// Returns ENOFILES if the walk finds no matching file. A root that cannot
// be listed, including a missing or unmounted share, returns the listing
// error instead (ENOFOLDER from the fs source), so an unreachable share is
// not reported as a drawing without files.
func (s *LocalScanner) Scan(ctx context.Context, code drawfind.DrawingCode) ([]drawfind.FileMatch, error) {
	var matches []drawfind.FileMatch
	if err := s.walk(ctx, s.Root, drawfind.LocalPattern(code), &matches, true); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, drawfind.Errorf(drawfind.ENOFILES, "no files found for %q", code)
	}
	return matches, nil
}

func (s *LocalScanner) walk(ctx context.Context, dir string, pattern *regexp.Regexp, matches *[]drawfind.FileMatch, root bool) error {
	entries, err := s.Source.List(ctx, dir)
	if err != nil {
		if root || ctx.Err() != nil {
			return err
		}
		return nil
	}

	var subdirs []string
	for _, e := range entries {
		if e.IsDir {
			subdirs = append(subdirs, e.Ref)
			continue
		}
		if m, ok := drawfind.MatchFile(pattern, e.Name, e.Ref); ok {
			*matches = append(*matches, m)
		}
	}

	for _, sub := range subdirs {
		if err := s.walk(ctx, sub, pattern, matches, false); err != nil {
			return err
		}
	}
	return nil
}
