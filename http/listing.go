package http

import (
	"context"

	"github.com/fwojciec/drawfind"
)

var _ drawfind.ListingSource = (*ListingSource)(nil)

// ListingSource lists a web-served directory by fetching its index page
// and parsing the hyperlinks on it.
type ListingSource struct {
	fetcher drawfind.Fetcher
	parser  drawfind.ListingParser
}

// NewListingSource creates a ListingSource.
func NewListingSource(fetcher drawfind.Fetcher, parser drawfind.ListingParser) *ListingSource {
	return &ListingSource{fetcher: fetcher, parser: parser}
}

// List fetches the index page at location and returns its entries.
func (s *ListingSource) List(ctx context.Context, location string) ([]drawfind.DirectoryEntry, error) {
	html, err := s.fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	return s.parser.ParseListing(html, location)
}
