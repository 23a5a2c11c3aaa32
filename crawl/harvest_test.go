package crawl_test

import (
	"context"
	"testing"

	"github.com/mwalczak/fedtext"
	"github.com/mwalczak/fedtext/crawl"
	"github.com/mwalczak/fedtext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarvester_HarvestYear_TriesCandidatesInOrder(t *testing.T) {
	t.Parallel()

	var fetched []string
	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			fetched = append(fetched, url)
			if url == "primary" {
				return "", fedtext.Errorf(fedtext.EUNAVAILABLE, "HTTP 404 for %s", url)
			}
			return "<html></html>", nil
		},
	}
	scanner := &mock.LinkScanner{
		ScanLinksFn: func(html, baseURL string, year int) ([]fedtext.LinkRecord, error) {
			return []fedtext.LinkRecord{{Date: "2003-06-25", Year: year, URL: "https://example.com/a.htm"}}, nil
		},
	}

	h := crawl.NewHarvester(fetcher, scanner,
		crawl.WithIndexURLs(func(year int) []string { return []string{"primary", "secondary", "tertiary"} }))

	records, err := h.HarvestYear(context.Background(), 2003)
	require.NoError(t, err)

	assert.Equal(t, []string{"primary", "secondary"}, fetched, "first success stops the fallback chain")
	require.Len(t, records, 1)
	assert.Equal(t, "2003-06-25", records[0].Date)
}

func TestHarvester_HarvestYear_FirstTransportSuccessWins_EvenWithNoLinks(t *testing.T) {
	t.Parallel()

	var fetched []string
	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			fetched = append(fetched, url)
			return "<html></html>", nil
		},
	}
	scanner := &mock.LinkScanner{
		ScanLinksFn: func(html, baseURL string, year int) ([]fedtext.LinkRecord, error) {
			return nil, nil
		},
	}

	h := crawl.NewHarvester(fetcher, scanner,
		crawl.WithIndexURLs(func(year int) []string { return []string{"primary", "secondary"} }))

	records, err := h.HarvestYear(context.Background(), 2003)
	require.NoError(t, err)

	assert.Empty(t, records)
	assert.Equal(t, []string{"primary"}, fetched)
}

func TestHarvester_HarvestYear_AllCandidatesFail_IsSoftFailure(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", fedtext.Errorf(fedtext.EUNAVAILABLE, "HTTP 404 for %s", url)
		},
	}
	scanner := &mock.LinkScanner{
		ScanLinksFn: func(html, baseURL string, year int) ([]fedtext.LinkRecord, error) {
			t.Fatal("scanner must not run without a fetched page")
			return nil, nil
		},
	}

	h := crawl.NewHarvester(fetcher, scanner)

	records, err := h.HarvestYear(context.Background(), 2003)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHarvester_HarvestYear_FeedFallback_RecentYear(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", fedtext.Errorf(fedtext.EUNAVAILABLE, "HTTP 503 for %s", url)
		},
	}
	scanner := &mock.LinkScanner{
		ScanLinksFn: func(html, baseURL string, year int) ([]fedtext.LinkRecord, error) {
			return nil, nil
		},
	}
	feed := &mock.FeedSource{
		EntriesFn: func(ctx context.Context, feedURL string) ([]fedtext.FeedEntry, error) {
			return []fedtext.FeedEntry{
				{Title: "Federal Reserve issues FOMC statement", URL: "https://www.federalreserve.gov/newsevents/pressreleases/monetary20240131a.htm"},
				{Title: "Minutes of the Federal Open Market Committee", URL: "https://www.federalreserve.gov/newsevents/pressreleases/monetary20240103a.htm"},
				{Title: "Federal Reserve issues FOMC statement", URL: "https://www.federalreserve.gov/newsevents/pressreleases/monetary20231213a.htm"},
			}, nil
		},
	}

	h := crawl.NewHarvester(fetcher, scanner, crawl.WithFeedSource(feed, fedtext.FeedURL))

	records, err := h.HarvestYear(context.Background(), 2024)
	require.NoError(t, err)

	// The minutes entry is excluded; the 2023 entry fails year consistency.
	require.Len(t, records, 1)
	assert.Equal(t, "2024-01-31", records[0].Date)
}

func TestHarvester_HarvestYear_FeedNotConsultedForHistoricalYears(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", fedtext.Errorf(fedtext.EUNAVAILABLE, "HTTP 404 for %s", url)
		},
	}
	scanner := &mock.LinkScanner{
		ScanLinksFn: func(html, baseURL string, year int) ([]fedtext.LinkRecord, error) { return nil, nil },
	}
	feed := &mock.FeedSource{
		EntriesFn: func(ctx context.Context, feedURL string) ([]fedtext.FeedEntry, error) {
			t.Fatal("feed must not be consulted for historical years")
			return nil, nil
		},
	}

	h := crawl.NewHarvester(fetcher, scanner, crawl.WithFeedSource(feed, fedtext.FeedURL))

	records, err := h.HarvestYear(context.Background(), 2003)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHarvester_HarvestRange_DeduplicatesAcrossYears(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) { return "<html></html>", nil },
	}
	// The same URL surfaces under two adjacent years, as happens when a
	// fallback page serves multiple years.
	scanner := &mock.LinkScanner{
		ScanLinksFn: func(html, baseURL string, year int) ([]fedtext.LinkRecord, error) {
			return []fedtext.LinkRecord{
				{Date: "2004-06-30", Year: year, URL: "https://example.com/monetary20040630a.htm"},
			}, nil
		},
	}

	h := crawl.NewHarvester(fetcher, scanner,
		crawl.WithIndexURLs(func(year int) []string { return []string{"index"} }))

	records, err := h.HarvestRange(context.Background(), 2004, 2005)
	require.NoError(t, err)

	assert.Len(t, records, 1)
}

func TestHarvester_HarvestRange_SortsChronologically(t *testing.T) {
	t.Parallel()

	byYear := map[int][]fedtext.LinkRecord{
		2001: {
			{Date: fedtext.DateUnknown, Year: 2001, URL: "https://example.com/2001/unknown.htm"},
			{Date: "2001-09-17", Year: 2001, URL: "https://example.com/20010917.htm"},
		},
		2000: {
			{Date: "2000-02-02", Year: 2000, URL: "https://example.com/20000202.htm"},
		},
	}
	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) { return "<html></html>", nil },
	}
	scanner := &mock.LinkScanner{
		ScanLinksFn: func(html, baseURL string, year int) ([]fedtext.LinkRecord, error) {
			return byYear[year], nil
		},
	}

	h := crawl.NewHarvester(fetcher, scanner,
		crawl.WithIndexURLs(func(year int) []string { return []string{"index"} }))

	records, err := h.HarvestRange(context.Background(), 2000, 2001)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "2000-02-02", records[0].Date)
	assert.Equal(t, "2001-09-17", records[1].Date)
	assert.Equal(t, fedtext.DateUnknown, records[2].Date, "unknown dates sort last")
}

func TestSortRecords_UnknownBucketLast_OrderedByYear(t *testing.T) {
	t.Parallel()

	records := []fedtext.LinkRecord{
		{Date: fedtext.DateUnknown, Year: 2002, URL: "u2"},
		{Date: "2008-10-28", Year: 2008, URL: "d2"},
		{Date: fedtext.DateUnknown, Year: 2000, URL: "u1"},
		{Date: "2000-02-02", Year: 2000, URL: "d1"},
	}

	crawl.SortRecords(records)

	assert.Equal(t, []string{"d1", "d2", "u1", "u2"}, []string{
		records[0].URL, records[1].URL, records[2].URL, records[3].URL,
	})
}
