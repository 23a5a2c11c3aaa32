// Package http provides HTTP-based implementations of fedtext.Fetcher and
// fedtext.FeedSource for retrieving index pages, statement pages, and the
// press release feed from the origin site.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mwalczak/fedtext"
)

// Default timeouts. Index pages are small and served fast; statement pages
// from the oldest era occasionally take longer.
const (
	DefaultIndexTimeout = 10 * time.Second
	DefaultPageTimeout  = 15 * time.Second
)

// DefaultUserAgent identifies the client to the origin. The origin serves
// reduced pages to clients without a browser-like agent string.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements fedtext.Fetcher at compile time.
var _ fedtext.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs over plain HTTP. The origin site
// is fully server-rendered, so no JavaScript execution is needed.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultPageTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultPageTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. A non-2xx status is
// reported as EUNAVAILABLE so callers can treat it as a soft failure.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fedtext.Errorf(fedtext.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fedtext.Errorf(fedtext.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body for %s: %w", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
