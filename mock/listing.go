package mock

import (
	"context"

	"github.com/fwojciec/drawfind"
)

var _ drawfind.ListingSource = (*ListingSource)(nil)

// ListingSource is a mock implementation of drawfind.ListingSource.
type ListingSource struct {
	ListFn func(ctx context.Context, location string) ([]drawfind.DirectoryEntry, error)
}

func (s *ListingSource) List(ctx context.Context, location string) ([]drawfind.DirectoryEntry, error) {
	return s.ListFn(ctx, location)
}

var _ drawfind.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of drawfind.ListingParser.
type ListingParser struct {
	ParseListingFn func(html string, baseURL string) ([]drawfind.DirectoryEntry, error)
}

func (p *ListingParser) ParseListing(html string, baseURL string) ([]drawfind.DirectoryEntry, error) {
	return p.ParseListingFn(html, baseURL)
}
