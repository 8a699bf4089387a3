package drawfind

import (
	"context"
	"io"
)

// DirectoryEntry is one item of a directory listing.
type DirectoryEntry struct {
	// Name is the displayed name: the anchor text of an HTML index,
	// or the base name of a file on disk.
	Name string

	// Ref is the resolved location: an absolute URL or filesystem path.
	Ref string

	IsDir bool
}

// ListingSource enumerates the entries of a directory-like location.
// Implementations exist per backend: an HTML index parser over HTTP and
// a filesystem reader.
type ListingSource interface {
	// List returns the entries found at location, in listing order.
	List(ctx context.Context, location string) ([]DirectoryEntry, error)
}

// Opener provides read access to the content behind a file reference.
type Opener interface {
	// Open returns the content at ref. The caller must close it.
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
}

// ListingParser extracts directory entries from a rendered index page.
type ListingParser interface {
	// ParseListing parses html and returns one entry per hyperlink.
	// The baseURL is the location of the page and resolves relative links.
	ParseListing(html string, baseURL string) ([]DirectoryEntry, error)
}
