package main

import (
	"fmt"

	"github.com/mwalczak/fedtext"
	"github.com/mwalczak/fedtext/crawl"
	"github.com/mwalczak/fedtext/fs"
	fedgoquery "github.com/mwalczak/fedtext/goquery"
	fedhttp "github.com/mwalczak/fedtext/http"
	fedslog "github.com/mwalczak/fedtext/slog"
)

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	if c.Start > c.End {
		return fedtext.Errorf(fedtext.EINVALID, "start year %d is after end year %d", c.Start, c.End)
	}

	httpFetcher := fedhttp.NewFetcher(fedhttp.WithTimeout(fedhttp.DefaultIndexTimeout))
	defer httpFetcher.Close()
	fetcher := fedslog.NewLoggingFetcher(httpFetcher, deps.Logger)

	opts := []crawl.HarvesterOption{crawl.WithHarvestLogger(deps.Logger)}
	if c.Feed {
		opts = append(opts, crawl.WithFeedSource(fedhttp.NewFeedSource(nil), fedtext.FeedURL))
	}
	harvester := crawl.NewHarvester(fetcher, fedgoquery.NewScanner(), opts...)

	records, err := harvester.HarvestRange(deps.Ctx, c.Start, c.End)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fedtext.ErrorMessage(err))
		return err
	}
	if len(records) == 0 {
		return fedtext.Errorf(fedtext.ENOTFOUND, "no statement links discovered for %d-%d", c.Start, c.End)
	}

	store := fs.NewManifestStore(deps.ManifestPath())
	if err := store.Write(deps.Ctx, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fedtext.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d statement links to %s\n", len(records), store.Path())
	return nil
}
