package main

import (
	"fmt"

	"github.com/mwalczak/fedtext"
	"github.com/mwalczak/fedtext/crawl"
	"github.com/mwalczak/fedtext/fs"
	fedgoquery "github.com/mwalczak/fedtext/goquery"
	fedhttp "github.com/mwalczak/fedtext/http"
	"github.com/mwalczak/fedtext/readability"
	fedslog "github.com/mwalczak/fedtext/slog"
	"github.com/mwalczak/fedtext/sqlite"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	manifest := fs.NewManifestStore(deps.ManifestPath())
	artifacts := fs.NewArtifactStore(deps.ArtifactsDir())

	httpFetcher := fedhttp.NewFetcher(fedhttp.WithTimeout(fedhttp.DefaultPageTimeout))
	defer httpFetcher.Close()
	fetcher := fedslog.NewLoggingFetcher(httpFetcher, deps.Logger)

	var extractor fedtext.Extractor
	switch c.Engine {
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = fedgoquery.NewExtractor()
	}
	extractor = fedslog.NewLoggingExtractor(extractor, deps.Logger)

	opts := []crawl.RunnerOption{
		crawl.WithRunLogger(deps.Logger),
		crawl.WithPacer(crawl.NewPacer(c.RPS, crawl.DefaultJitterMin, crawl.DefaultJitterMax)),
	}
	if c.ReportDB != "" {
		db := sqlite.NewDB(c.ReportDB)
		if err := db.Open(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fedtext.ErrorMessage(err))
			return err
		}
		defer db.Close()
		opts = append(opts, crawl.WithReportStore(sqlite.NewReportStore(db)))
	}

	runner := crawl.NewRunner(manifest, artifacts, fetcher, extractor, opts...)
	stats, err := runner.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fedtext.ErrorMessage(err))
		return err
	}

	names, err := artifacts.Names()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fedtext.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d statements: %d extracted, %d skipped, %d low text, %d failed\n",
		stats.Total, stats.Extracted, stats.Skipped, stats.LowText, stats.Failed)
	fmt.Fprintf(deps.Stdout, "%d artifacts in %s\n", len(names), artifacts.Dir())
	return nil
}
