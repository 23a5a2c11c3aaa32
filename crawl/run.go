package crawl

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mwalczak/fedtext"
)

// MinTextLength is the quality floor for an extracted artifact. Texts below
// it are persisted anyway but recorded as low-quality, since a fetched item
// is never silently dropped.
const MinTextLength = 100

// RunStats summarizes one orchestrator run.
type RunStats struct {
	Total     int
	Extracted int
	Skipped   int
	LowText   int
	Failed    int
}

// Runner walks a manifest in file order and persists one text artifact per
// statement. Completed artifacts are skipped, so an interrupted run resumes
// safely on re-invocation.
type Runner struct {
	manifest  fedtext.ManifestStore
	artifacts fedtext.ArtifactStore
	fetcher   fedtext.Fetcher
	extractor fedtext.Extractor
	reports   fedtext.ReportStore
	pacer     *Pacer
	retries   []time.Duration
	logger    *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithReportStore enables per-locator diagnostics recording.
func WithReportStore(reports fedtext.ReportStore) RunnerOption {
	return func(r *Runner) {
		r.reports = reports
	}
}

// WithPacer sets the inter-iteration pacer. Defaults to 2 rps with the
// default jitter bounds.
func WithPacer(p *Pacer) RunnerOption {
	return func(r *Runner) {
		r.pacer = p
	}
}

// WithRetryDelays overrides the fetch retry backoff schedule.
func WithRetryDelays(delays []time.Duration) RunnerOption {
	return func(r *Runner) {
		r.retries = delays
	}
}

// WithRunLogger sets the logger used for run diagnostics.
func WithRunLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner over the given stores, fetcher and extractor.
func NewRunner(manifest fedtext.ManifestStore, artifacts fedtext.ArtifactStore, fetcher fedtext.Fetcher, extractor fedtext.Extractor, opts ...RunnerOption) *Runner {
	r := &Runner{
		manifest:  manifest,
		artifacts: artifacts,
		fetcher:   fetcher,
		extractor: extractor,
		pacer:     NewPacer(2, DefaultJitterMin, DefaultJitterMax),
		retries:   DefaultRetryDelays(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the extraction pass over the manifest. A missing manifest is
// the one fatal precondition; every per-item failure is contained at the
// item boundary. Cancellation between items returns the context error with
// all previously published artifacts intact.
func (r *Runner) Run(ctx context.Context) (*RunStats, error) {
	records, err := r.manifest.Read(ctx)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	stats := &RunStats{Total: len(records)}
	r.logger.Info("extraction run started", "run_id", runID, "statements", len(records))

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		name := fedtext.ArtifactName(rec.Date, rec.Year, i)

		exists, err := r.artifacts.Exists(name)
		if err != nil {
			return stats, err
		}
		if exists {
			// Already satisfied by a prior run. No fetch, no delay.
			stats.Skipped++
			continue
		}

		outcome := r.processRecord(ctx, runID, rec, name)
		switch outcome {
		case fedtext.OutcomeExtracted:
			stats.Extracted++
		case fedtext.OutcomeLowText:
			stats.LowText++
		case fedtext.OutcomeFailed:
			stats.Failed++
		}

		if err := r.pacer.Wait(ctx); err != nil {
			return stats, err
		}
	}

	r.logger.Info("extraction run finished", "run_id", runID,
		"extracted", stats.Extracted, "skipped", stats.Skipped,
		"low_text", stats.LowText, "failed", stats.Failed)
	return stats, nil
}

// processRecord fetches, extracts and publishes one statement. The artifact
// is written even when the text is empty or short, so a fetched item is
// never dropped; the outcome classifies what happened for the run report.
func (r *Runner) processRecord(ctx context.Context, runID string, rec fedtext.LinkRecord, name string) fedtext.ReportOutcome {
	begin := time.Now()

	var text string
	var strategy fedtext.Strategy
	outcome := fedtext.OutcomeExtracted

	html, err := FetchWithRetryDelays(ctx, rec.URL, r.fetcher.Fetch, func(format string, args ...any) {
		r.logger.Debug("fetch retry", "url", rec.URL)
	}, r.retries)
	if err != nil {
		r.logger.Warn("fetch failed", "url", rec.URL, "err", err)
		outcome = fedtext.OutcomeFailed
	} else {
		result, err := r.extractor.Extract(html)
		if err != nil {
			r.logger.Warn("extraction failed", "url", rec.URL, "err", err)
			outcome = fedtext.OutcomeFailed
		} else {
			text = result.Text
			strategy = result.Strategy
		}
	}

	if outcome != fedtext.OutcomeFailed && len(text) < MinTextLength {
		r.logger.Warn("low text count, check URL manually", "url", rec.URL, "chars", len(text))
		outcome = fedtext.OutcomeLowText
	}

	if err := r.artifacts.Write(ctx, name, text); err != nil {
		r.logger.Error("artifact write failed", "name", name, "err", err)
		return fedtext.OutcomeFailed
	}

	r.record(ctx, &fedtext.ReportRecord{
		RunID:       runID,
		Date:        rec.Date,
		URL:         rec.URL,
		Strategy:    strategy,
		TextLength:  len(text),
		ContentHash: hashText(text),
		Outcome:     outcome,
		Duration:    time.Since(begin),
	})

	r.logger.Info("statement processed", "artifact", name, "strategy", strategy, "chars", len(text))
	return outcome
}

// record persists a diagnostic row when a report store is configured.
// Report failures never affect the extraction outcome.
func (r *Runner) record(ctx context.Context, rec *fedtext.ReportRecord) {
	if r.reports == nil {
		return
	}
	if err := r.reports.CreateRecord(ctx, rec); err != nil {
		r.logger.Warn("report record failed", "url", rec.URL, "err", err)
	}
}

// hashText computes the xxHash of a text and returns it hex-encoded.
func hashText(text string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(text))
	return hex.EncodeToString(b[:])
}
