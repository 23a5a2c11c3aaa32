package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/mwalczak/fedtext"
)

// Ensure FeedSource implements fedtext.FeedSource at compile time.
var _ fedtext.FeedSource = (*FeedSource)(nil)

// FeedSource reads the origin's RSS press release feed.
type FeedSource struct {
	client    *http.Client
	userAgent string
}

// NewFeedSource creates a new FeedSource with the given HTTP client.
// If client is nil, a client with DefaultIndexTimeout is used.
func NewFeedSource(client *http.Client) *FeedSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultIndexTimeout}
	}
	return &FeedSource{client: client, userAgent: DefaultUserAgent}
}

// Entries fetches the feed and returns its items in document order.
// Items without a link are skipped; a missing or malformed pubDate leaves
// Published at its zero value rather than dropping the entry.
func (s *FeedSource) Entries(ctx context.Context, feedURL string) ([]fedtext.FeedEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fedtext.Errorf(fedtext.EUNAVAILABLE, "fetch feed %s: %v", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fedtext.Errorf(fedtext.EUNAVAILABLE, "HTTP %d for feed %s", resp.StatusCode, feedURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed %s: %w", feedURL, err)
	}

	return parseFeed(body)
}

// parseFeed extracts items from an RSS 2.0 document.
func parseFeed(data []byte) ([]fedtext.FeedEntry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fedtext.Errorf(fedtext.EINVALID, "malformed feed XML: %v", err)
	}

	var entries []fedtext.FeedEntry
	for _, item := range doc.FindElements("//item") {
		entry := fedtext.FeedEntry{}
		if el := item.FindElement("title"); el != nil {
			entry.Title = strings.TrimSpace(el.Text())
		}
		if el := item.FindElement("link"); el != nil {
			entry.URL = strings.TrimSpace(el.Text())
		}
		if el := item.FindElement("pubDate"); el != nil {
			if t, err := time.Parse(time.RFC1123, strings.TrimSpace(el.Text())); err == nil {
				entry.Published = t
			} else if t, err := time.Parse(time.RFC1123Z, strings.TrimSpace(el.Text())); err == nil {
				entry.Published = t
			}
		}
		if entry.URL == "" {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
