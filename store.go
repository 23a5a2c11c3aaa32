package fedtext

import (
	"context"
	"time"
)

// ManifestStore persists the ordered, deduplicated table of discovered
// statement links.
type ManifestStore interface {
	// Write persists the manifest, replacing any previous one.
	Write(ctx context.Context, records []LinkRecord) error

	// Read loads the manifest. Returns ENOTFOUND if no manifest exists;
	// this is the one precondition that stops a run.
	Read(ctx context.Context) ([]LinkRecord, error)
}

// ArtifactStore persists extracted statement texts, one file per statement.
// Writes are atomic: a partially written artifact must never be observable
// under its final name.
type ArtifactStore interface {
	// Exists reports whether an artifact has already been published.
	Exists(name string) (bool, error)

	// Write publishes an artifact. The text is written to a temporary
	// location and renamed into place.
	Write(ctx context.Context, name string, text string) error
}

// ReportOutcome classifies how one manifest row was handled.
type ReportOutcome string

// Report outcomes.
const (
	OutcomeExtracted ReportOutcome = "extracted"
	OutcomeSkipped   ReportOutcome = "skipped"
	OutcomeLowText   ReportOutcome = "low_text"
	OutcomeFailed    ReportOutcome = "failed"
)

// ReportRecord is one row of run diagnostics: which strategy fired for a
// locator, how much text it yielded, and how long the fetch took.
type ReportRecord struct {
	ID          string
	RunID       string
	Date        string
	URL         string
	Strategy    Strategy
	TextLength  int
	ContentHash string
	Outcome     ReportOutcome
	Duration    time.Duration
	CreatedAt   time.Time
}

// Validate returns an error if the record contains invalid fields.
func (r *ReportRecord) Validate() error {
	if r.RunID == "" {
		return Errorf(EINVALID, "report record run ID required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "report record URL required")
	}
	return nil
}

// ReportStore records per-locator extraction diagnostics.
type ReportStore interface {
	// CreateRecord persists one diagnostic record.
	CreateRecord(ctx context.Context, rec *ReportRecord) error
}
