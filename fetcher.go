package drawfind

import "context"

// Fetcher retrieves the HTML of a directory index page.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// Non-success responses and transport failures are EFETCH errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
