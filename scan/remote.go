// Package scan resolves drawing codes against directory listings: a two
// level descent through a web-served index, or a recursive walk of a
// network share.
package scan

import (
	"context"
	"net/url"
	"path"
	"regexp"

	"github.com/fwojciec/drawfind"
)

var _ drawfind.Resolver = (*RemoteScanner)(nil)

// RemoteScanner finds drawings in the web archive. The archive root lists
// one folder per first code segment ("180 ..."), each of which lists one
// folder per two-segment prefix ("180-570 ..."), which holds the files.
type RemoteScanner struct {
	Source  drawfind.ListingSource
	RootURL string
}

// Backend returns drawfind.BackendWeb.
func (s *RemoteScanner) Backend() drawfind.Backend {
	return drawfind.BackendWeb
}

// Resolve normalizes code for the web archive, scans it and selects the
// latest revision.
func (s *RemoteScanner) Resolve(ctx context.Context, code string) (*drawfind.Result, error) {
	normalized, err := drawfind.Normalize(code, drawfind.BackendWeb)
	if err != nil {
		return nil, err
	}

	matches, latest, err := s.scan(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return &drawfind.Result{
		Backend: drawfind.BackendWeb,
		Code:    normalized,
		Matches: matches,
		Latest:  latest,
	}, nil
}

// Scan descends from the root to the folder holding code's files and
// returns every file named CODE(-PAGE)?-REVISION.tif, in listing order,
// together with the latest revision label among them.
func (s *RemoteScanner) Scan(ctx context.Context, code drawfind.DrawingCode) ([]drawfind.FileMatch, string, error) {
	matches, latest, err := s.scan(ctx, code)
	if err != nil {
		return nil, "", err
	}
	return matches, latest.Revision, nil
}

func (s *RemoteScanner) scan(ctx context.Context, code drawfind.DrawingCode) ([]drawfind.FileMatch, drawfind.Selection, error) {
	first := code.Prefix(1)
	folder, err := s.descend(ctx, s.RootURL, first)
	if err != nil {
		return nil, drawfind.Selection{}, err
	}
	if folder == "" {
		return nil, drawfind.Selection{}, drawfind.Errorf(drawfind.ENOFOLDER, "no folder found for prefix %q", first)
	}

	second := code.Prefix(2)
	subfolder, err := s.descend(ctx, folder, second)
	if err != nil {
		return nil, drawfind.Selection{}, err
	}
	if subfolder == "" {
		return nil, drawfind.Selection{}, drawfind.Errorf(drawfind.ENOSUBFOLDER, "no subfolder found for %q", second)
	}

	entries, err := s.Source.List(ctx, subfolder)
	if err != nil {
		return nil, drawfind.Selection{}, err
	}

	pattern := drawfind.RemotePattern(code)
	var matches []drawfind.FileMatch
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		if m, ok := drawfind.MatchFile(pattern, refName(e.Ref), e.Ref); ok {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		return nil, drawfind.Selection{}, drawfind.Errorf(drawfind.ENOFILES, "no files found for %q", code)
	}

	return matches, drawfind.SelectLatest(matches), nil
}

// descend lists location and returns the ref of the first entry whose name
// starts with prefix followed by a word boundary, or "" if none does.
func (s *RemoteScanner) descend(ctx context.Context, location, prefix string) (string, error) {
	entries, err := s.Source.List(ctx, location)
	if err != nil {
		return "", err
	}

	re := prefixPattern(prefix)
	for _, e := range entries {
		if re.MatchString(e.Name) {
			return e.Ref, nil
		}
	}
	return "", nil
}

// prefixPattern matches names starting with prefix as a whole word:
// "180" matches "180" and "180-570 old" but not "1801-foo".
func prefixPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `\b`)
}

// refName returns the unescaped last path element of a URL.
func refName(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return path.Base(ref)
	}
	return path.Base(u.Path)
}
