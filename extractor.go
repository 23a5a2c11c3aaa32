package fedtext

import "strings"

// Strategy identifies which extraction strategy produced a text.
type Strategy string

// Extraction strategies, in the order they are attempted.
const (
	// StrategyStructural matched one of the known body-content container
	// IDs or classes introduced by the site after 2005. Exact when it
	// fires.
	StrategyStructural Strategy = "structural"

	// StrategyDensity selected the longest qualifying text block among
	// generic containers. Used for the table-layout era that predates
	// semantic containers.
	StrategyDensity Strategy = "density"

	// StrategyRaw returned the whole remaining document text. Degenerate
	// fallback, expected to trip the orchestrator's quality check.
	StrategyRaw Strategy = "raw"
)

// ExtractResult holds the body text extracted from a statement page.
type ExtractResult struct {
	// Text is whitespace-normalized: no run of whitespace longer than one
	// space, no leading or trailing whitespace.
	Text string

	// Strategy that produced the text.
	Strategy Strategy
}

// Extractor isolates statement body text from a page's HTML.
type Extractor interface {
	// Extract processes raw HTML and returns the body text. Site chrome
	// (scripts, styles, navigation, headers, footers, form controls) is
	// stripped before any strategy runs. Returns EINVALID for empty input.
	Extract(html string) (*ExtractResult, error)
}

// NormalizeText collapses every run of whitespace (spaces, tabs, newlines)
// to a single space and trims the ends. Applied to the output of every
// extraction strategy.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
