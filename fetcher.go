package fedtext

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// LinkScanner filters a page's anchors down to statement links.
type LinkScanner interface {
	// ScanLinks parses HTML and returns the statement links discovered for
	// the given index year. Relative hrefs are resolved against baseURL.
	// Results are deduplicated by URL within one call.
	ScanLinks(html string, baseURL string, year int) ([]LinkRecord, error)
}
