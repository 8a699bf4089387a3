// Package http provides HTTP-based access to a web-served drawing archive:
// fetching directory index pages, listing them, and downloading files.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/drawfind"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

var (
	_ drawfind.Fetcher = (*Fetcher)(nil)
	_ drawfind.Opener  = (*Fetcher)(nil)
)

// Fetcher performs GET requests against the archive server.
//
// Index pages are small, so Fetch bounds the whole request by the timeout.
// Drawing files can be large, so Open bounds only the wait for response
// headers and lets the body stream for as long as ctx allows.
type Fetcher struct {
	pages     *http.Client
	downloads *http.Client
	timeout   time.Duration
	limiter   drawfind.DomainLimiter
	delays    []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for index page requests and the response
// header timeout for downloads.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithLimiter paces requests per host through limiter.
func WithLimiter(limiter drawfind.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = limiter
	}
}

// WithRetryDelays retries transport failures and 5xx responses once per
// delay, waiting the given duration before each retry.
func WithRetryDelays(delays ...time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = f.timeout

	f.pages = &http.Client{
		Transport: transport,
		Timeout:   f.timeout,
	}
	f.downloads = &http.Client{
		Transport: transport,
	}

	return f
}

// Fetch retrieves the body at the given URL as a string.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	rc, err := f.get(ctx, f.pages, url)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", drawfind.Errorf(drawfind.EFETCH, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// Open issues a GET request and returns the response body of a 200 response.
// Reading the body is bounded by ctx only.
func (f *Fetcher) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	return f.get(ctx, f.downloads, url)
}

func (f *Fetcher) get(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(f.delays[attempt-1]):
			}
		}

		resp, retry, err := f.do(ctx, client, url)
		if err == nil {
			return resp.Body, nil
		}
		lastErr = err
		if !retry {
			break
		}
	}
	return nil, lastErr
}

// do performs a single request. The returned flag reports whether a
// failure is worth retrying.
func (f *Fetcher) do(ctx context.Context, client *http.Client, rawURL string) (*http.Response, bool, error) {
	if f.limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, false, drawfind.Errorf(drawfind.EFETCH, "invalid URL %q: %v", rawURL, err)
		}
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return nil, false, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, drawfind.Errorf(drawfind.EFETCH, "invalid URL %q: %v", rawURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, drawfind.Errorf(drawfind.EFETCH, "cannot reach %s: %v", rawURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		retry := resp.StatusCode >= http.StatusInternalServerError
		return nil, retry, drawfind.Errorf(drawfind.EFETCH, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	return resp, false, nil
}
