package fedtext

import (
	"context"
	"time"
)

// FeedEntry is one item from the origin's press release feed.
type FeedEntry struct {
	Title     string
	URL       string
	Published time.Time
}

// FeedSource discovers statement candidates from the origin's press release
// feed. Used as a last-resort discovery source for recent years when none of
// the index pages resolve.
type FeedSource interface {
	// Entries fetches the feed and returns its items. Entries are not yet
	// filtered; the harvester applies the same link predicates it applies
	// to index page anchors.
	Entries(ctx context.Context, feedURL string) ([]FeedEntry, error)
}
