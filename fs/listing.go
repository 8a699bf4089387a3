// Package fs provides filesystem access to drawing archives on local or
// network shares.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/drawfind"
)

var (
	_ drawfind.ListingSource = (*ListingSource)(nil)
	_ drawfind.Opener        = (*ListingSource)(nil)
)

// ListingSource lists directories and opens files through the os package.
type ListingSource struct{}

// NewListingSource creates a new ListingSource.
func NewListingSource() *ListingSource {
	return &ListingSource{}
}

// List returns the entries of the directory at location, sorted by name.
// Entry refs are absolute paths. Symbolic links are reported as files.
func (s *ListingSource) List(ctx context.Context, location string) ([]drawfind.DirectoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(location)
	if err != nil {
		dir = location
	}

	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, drawfind.Errorf(drawfind.ENOFOLDER, "cannot read folder %s: %v", dir, err)
	}

	entries := make([]drawfind.DirectoryEntry, 0, len(des))
	for _, de := range des {
		entries = append(entries, drawfind.DirectoryEntry{
			Name:  de.Name(),
			Ref:   filepath.Join(dir, de.Name()),
			IsDir: de.IsDir(),
		})
	}
	return entries, nil
}

// Open opens the file at path for reading.
func (s *ListingSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, drawfind.Errorf(drawfind.EFETCH, "cannot open %s: %v", path, err)
	}
	return f, nil
}
