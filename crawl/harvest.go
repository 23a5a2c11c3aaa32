package crawl

import (
	"context"
	"log/slog"
	"sort"

	"github.com/mwalczak/fedtext"
)

// Harvester discovers statement links, one index year at a time, and
// aggregates them into a deduplicated, chronologically sorted manifest.
type Harvester struct {
	fetcher   fedtext.Fetcher
	scanner   fedtext.LinkScanner
	feed      fedtext.FeedSource
	feedURL   string
	baseURL   string
	indexURLs func(year int) []string
	logger    *slog.Logger
}

// HarvesterOption configures a Harvester.
type HarvesterOption func(*Harvester)

// WithFeedSource enables the press release feed as a last-resort discovery
// source for recent years when every index page fails.
func WithFeedSource(feed fedtext.FeedSource, feedURL string) HarvesterOption {
	return func(h *Harvester) {
		h.feed = feed
		h.feedURL = feedURL
	}
}

// WithHarvestLogger sets the logger used for harvest diagnostics.
func WithHarvestLogger(logger *slog.Logger) HarvesterOption {
	return func(h *Harvester) {
		h.logger = logger
	}
}

// WithBaseURL overrides the origin used for index page locations and
// relative link resolution. Tests point this at a local server.
func WithBaseURL(baseURL string) HarvesterOption {
	return func(h *Harvester) {
		h.baseURL = baseURL
	}
}

// WithIndexURLs overrides the candidate index locations per year.
func WithIndexURLs(fn func(year int) []string) HarvesterOption {
	return func(h *Harvester) {
		h.indexURLs = fn
	}
}

// NewHarvester creates a Harvester using the given fetcher and scanner.
func NewHarvester(fetcher fedtext.Fetcher, scanner fedtext.LinkScanner, opts ...HarvesterOption) *Harvester {
	h := &Harvester{
		fetcher:   fetcher,
		scanner:   scanner,
		baseURL:   fedtext.BaseURL,
		indexURLs: fedtext.IndexURLs,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HarvestYear discovers statement links for one index year. Candidate index
// locations are tried in order and the first transport-level success wins,
// even when it yields no links. When every candidate fails the press
// release feed (if configured) is consulted for recent years; when that
// fails too the year resolves to an empty result, which is a soft failure.
func (h *Harvester) HarvestYear(ctx context.Context, year int) ([]fedtext.LinkRecord, error) {
	for _, indexURL := range h.indexURLs(year) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := h.fetcher.Fetch(ctx, indexURL)
		if err != nil {
			h.logger.Debug("index page unavailable", "year", year, "url", indexURL, "err", err)
			continue
		}

		records, err := h.scanner.ScanLinks(html, h.baseURL, year)
		if err != nil {
			h.logger.Warn("index page unparseable", "year", year, "url", indexURL, "err", err)
			return nil, nil
		}

		h.logger.Info("harvested index page", "year", year, "url", indexURL, "links", len(records))
		return records, nil
	}

	if h.feed != nil && year >= fedtext.RollingCalendarYear {
		if records, err := h.harvestFeed(ctx, year); err == nil {
			return records, nil
		} else if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	h.logger.Warn("no index source resolved", "year", year)
	return nil, nil
}

// harvestFeed runs the feed entries through the same predicates an index
// page anchor passes through, using the entry title as the anchor text.
func (h *Harvester) harvestFeed(ctx context.Context, year int) ([]fedtext.LinkRecord, error) {
	entries, err := h.feed.Entries(ctx, h.feedURL)
	if err != nil {
		h.logger.Debug("feed unavailable", "url", h.feedURL, "err", err)
		return nil, err
	}

	seen := make(map[string]bool)
	var records []fedtext.LinkRecord
	for _, entry := range entries {
		if !fedtext.IsStatementLink(entry.URL, entry.Title) {
			continue
		}
		if fedtext.IsExcludedLink(entry.Title) {
			continue
		}
		linkYear, ok := fedtext.YearFromURL(entry.URL)
		if !ok || linkYear != year {
			continue
		}
		if !fedtext.HasAllowedPath(entry.URL) {
			continue
		}
		if seen[entry.URL] {
			continue
		}
		seen[entry.URL] = true

		records = append(records, fedtext.LinkRecord{
			Date:  fedtext.DateFromURL(entry.URL),
			Year:  year,
			Label: entry.Title,
			URL:   entry.URL,
		})
	}

	h.logger.Info("harvested feed", "year", year, "links", len(records))
	return records, nil
}

// HarvestRange harvests every year in [start, end], deduplicates globally
// by URL and sorts the result chronologically. Records whose date could not
// be derived sort after all dated records, grouped by year.
func (h *Harvester) HarvestRange(ctx context.Context, start, end int) ([]fedtext.LinkRecord, error) {
	var all []fedtext.LinkRecord
	seen := make(map[string]bool)

	for year := start; year <= end; year++ {
		records, err := h.HarvestYear(ctx, year)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			if seen[rec.URL] {
				continue
			}
			seen[rec.URL] = true
			all = append(all, rec)
		}
	}

	SortRecords(all)
	return all, nil
}

// SortRecords orders manifest records ascending by date. Records carrying
// the unknown-date sentinel form a separate bucket sorted last by year,
// instead of letting the sentinel string sort lexically among real ISO
// dates. The sort is stable so same-date records keep discovery order.
func SortRecords(records []fedtext.LinkRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		iu := records[i].Date == fedtext.DateUnknown
		ju := records[j].Date == fedtext.DateUnknown
		if iu != ju {
			return ju
		}
		if iu {
			return records[i].Year < records[j].Year
		}
		return records[i].Date < records[j].Date
	})
}
