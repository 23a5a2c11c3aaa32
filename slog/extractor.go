package slog

import (
	"log/slog"
	"time"

	"github.com/mwalczak/fedtext"
)

// Ensure LoggingExtractor implements fedtext.Extractor.
var _ fedtext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of which strategy
// fired and how much text it produced.
type LoggingExtractor struct {
	next   fedtext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next fedtext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *fedtext.ExtractResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"input_bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs, "strategy", result.Strategy, "chars", len(result.Text))
		}
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
