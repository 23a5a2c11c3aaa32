package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwalczak/fedtext"
)

// Ensure Scanner implements fedtext.LinkScanner at compile time.
var _ fedtext.LinkScanner = (*Scanner)(nil)

// Scanner filters index page anchors down to statement links for one year.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanLinks parses HTML and returns the statement links discovered for the
// given index year. Every anchor is evaluated against the domain predicates:
// statement inclusion, exclusion keywords (which take precedence), year
// consistency against the requested period, and the statement path
// allow-list. Relative hrefs are resolved against baseURL. Results are
// deduplicated by resolved URL within one call, keeping document order.
func (s *Scanner) ScanLinks(html string, baseURL string, year int) ([]fedtext.LinkRecord, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fedtext.Errorf(fedtext.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fedtext.Errorf(fedtext.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var records []fedtext.LinkRecord

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		text := strings.TrimSpace(sel.Text())

		if !fedtext.IsStatementLink(href, text) {
			return
		}
		if fedtext.IsExcludedLink(text) {
			return
		}

		// Year consistency: a fallback page can serve several years at
		// once, so a link whose path year disagrees with the requested
		// period is stale. Recent-era pages are reliable enough that a
		// link without any parseable year is noise.
		if linkYear, ok := fedtext.YearFromURL(href); ok {
			if linkYear != year {
				return
			}
		} else if year >= fedtext.ReliableLinkYear {
			return
		}

		if !fedtext.HasAllowedPath(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true

		records = append(records, fedtext.LinkRecord{
			Date:  fedtext.DateFromURL(resolved),
			Year:  year,
			Label: text,
			URL:   resolved,
		})
	})

	return records, nil
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
