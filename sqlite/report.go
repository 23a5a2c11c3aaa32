package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mwalczak/fedtext"
)

// Compile-time interface verification.
var _ fedtext.ReportStore = (*ReportStore)(nil)

// ReportStore implements fedtext.ReportStore using SQLite.
type ReportStore struct {
	db *DB
}

// NewReportStore creates a new ReportStore.
func NewReportStore(db *DB) *ReportStore {
	return &ReportStore{db: db}
}

// CreateRecord persists one diagnostic record.
func (s *ReportStore) CreateRecord(ctx context.Context, rec *fedtext.ReportRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO report_records (id, run_id, date, url, strategy, text_length, content_hash, outcome, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.RunID, rec.Date, rec.URL, string(rec.Strategy), rec.TextLength,
		rec.ContentHash, string(rec.Outcome), rec.Duration.Milliseconds(),
		rec.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRecordsByRun returns every record for a run in insertion order.
func (s *ReportStore) FindRecordsByRun(ctx context.Context, runID string) ([]*fedtext.ReportRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, date, url, strategy, text_length, content_hash, outcome, duration_ms, created_at
		FROM report_records
		WHERE run_id = ?
		ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*fedtext.ReportRecord
	for rows.Next() {
		var rec fedtext.ReportRecord
		var strategy, outcome, createdAt string
		var durationMS int64
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Date, &rec.URL, &strategy,
			&rec.TextLength, &rec.ContentHash, &outcome, &durationMS, &createdAt); err != nil {
			return nil, err
		}
		rec.Strategy = fedtext.Strategy(strategy)
		rec.Outcome = fedtext.ReportOutcome(outcome)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = t
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}
