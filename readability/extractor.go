// Package readability provides a fedtext.Extractor backed by go-readability.
// It is an alternative engine to the default site-specific strategy chain,
// selectable from the CLI; useful as a cross-check when the site changes
// markup again.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/mwalczak/fedtext"
)

// Ensure Extractor implements fedtext.Extractor at compile time.
var _ fedtext.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract statement body text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the body text. Readability has no
// notion of the site's strategy chain, so the result is always reported as
// a structural extraction: readability's own scoring picked the container.
func (e *Extractor) Extract(rawHTML string) (*fedtext.ExtractResult, error) {
	if rawHTML == "" {
		return nil, fedtext.Errorf(fedtext.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &fedtext.ExtractResult{
		Text:     fedtext.NormalizeText(article.TextContent),
		Strategy: fedtext.StrategyStructural,
	}, nil
}
