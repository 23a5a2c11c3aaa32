// Package goquery provides goquery-based implementations of
// fedtext.Extractor and fedtext.LinkScanner. It carries the site-specific
// knowledge of how statement pages and index pages were marked up across
// the 2000-2024 span.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwalczak/fedtext"
)

// MinBlockLength is the minimum whitespace-collapsed character count for a
// block to qualify as a density candidate. Navigation cells, bylines and
// boilerplate sit well below this bound; statement bodies sit well above it.
const MinBlockLength = 200

// chromeSelector matches the site-chrome elements stripped before any
// strategy runs, so navigation text never contaminates a result.
const chromeSelector = "script, style, nav, footer, header, input, button"

// structuralSelectors are the known body-content containers, probed in
// priority order. The IDs were introduced by the site in different eras
// specifically to mark body content; the class covers the Bootstrap era.
var structuralSelectors = []string{
	"div#article",
	"div#leftText",
	"div#content",
	"div.col-md-8",
}

// Ensure Extractor implements fedtext.Extractor at compile time.
var _ fedtext.Extractor = (*Extractor)(nil)

// Extractor isolates statement body text using an ordered strategy chain:
// structural container match, content-density heuristic, raw-text fallback.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the statement body text.
func (e *Extractor) Extract(rawHTML string) (*fedtext.ExtractResult, error) {
	if rawHTML == "" {
		return nil, fedtext.Errorf(fedtext.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fedtext.Errorf(fedtext.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(chromeSelector).Remove()

	if text, ok := extractStructural(doc); ok {
		return &fedtext.ExtractResult{Text: text, Strategy: fedtext.StrategyStructural}, nil
	}

	if text, ok := extractDensity(doc); ok {
		return &fedtext.ExtractResult{Text: text, Strategy: fedtext.StrategyDensity}, nil
	}

	return &fedtext.ExtractResult{
		Text:     fedtext.NormalizeText(doc.Text()),
		Strategy: fedtext.StrategyRaw,
	}, nil
}

// extractStructural probes the known body-content containers in priority
// order. The first match wins immediately; these containers are exact
// markers, so no further validation is needed.
func extractStructural(doc *goquery.Document) (string, bool) {
	for _, selector := range structuralSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			return fedtext.NormalizeText(sel.Text()), true
		}
	}
	return "", false
}

// extractDensity enumerates every table cell and generic block, drops those
// below MinBlockLength, and selects the longest survivor. In the
// table-layout era the statement body is reliably the largest contiguous
// text block on the page; longest-wins is the sole tie-break.
func extractDensity(doc *goquery.Document) (string, bool) {
	var best string
	doc.Find("td, div").Each(func(_ int, sel *goquery.Selection) {
		clean := fedtext.NormalizeText(sel.Text())
		if len(clean) < MinBlockLength {
			return
		}
		if len(clean) > len(best) {
			best = clean
		}
	})
	return best, best != ""
}
