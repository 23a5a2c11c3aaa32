package fedtext

import (
	"strconv"
	"strings"
)

// BaseURL is the origin against which relative statement links are resolved.
const BaseURL = "https://www.federalreserve.gov"

// Era thresholds for harvesting behavior.
const (
	// ReliableLinkYear is the first year whose index pages are trusted
	// enough that a link without a parseable year is treated as noise.
	ReliableLinkYear = 2015

	// RollingCalendarYear is the first year served by the current
	// rolling-calendar index page.
	RollingCalendarYear = 2019
)

// LinkRecord represents one discovered statement reference.
type LinkRecord struct {
	// Canonical YYYY-MM-DD date derived from the URL, or DateUnknown.
	Date string `json:"date"`

	// Index year under which the link was discovered.
	Year int `json:"year"`

	// Raw anchor text. Human-readable, may contain noise.
	Label string `json:"label"`

	// Absolute resource URL. Unique within a manifest.
	URL string `json:"url"`
}

// Validate returns an error if the record contains invalid fields.
func (r *LinkRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "link record URL required")
	}
	if r.Year == 0 {
		return Errorf(EINVALID, "link record year required")
	}
	return nil
}

// exclusionKeywords disqualify an anchor regardless of any inclusion match.
// These identify documents adjacent to statements (minutes, press
// conferences, projection materials) that must not enter the manifest.
var exclusionKeywords = []string{
	"minutes",
	"press conference",
	"call",
	"video",
	"pdf",
	"financial",
	"longer-run",
	"implementation",
	"correction",
	"projection",
	"balance sheet",
}

// allowedPathPrefixes are the known statement-serving path fragments across
// all eras of the site.
var allowedPathPrefixes = []string{
	"/newsevents/press/monetary",
	"/boarddocs/press/general",
	"/boarddocs/press/monetary",
	"/newsevents/pressreleases/monetary",
}

// IsStatementLink reports whether an anchor looks like a statement link.
// Either the visible text mentions a statement or the path follows the
// monetary press-release pattern that statement pages use.
func IsStatementLink(href, text string) bool {
	h := strings.ToLower(href)
	t := strings.ToLower(text)
	if strings.Contains(t, "statement") {
		return true
	}
	return strings.Contains(h, "monetary") &&
		strings.Contains(h, "pressreleases") &&
		strings.Contains(h, "a.htm")
}

// IsExcludedLink reports whether the anchor text matches any exclusion
// keyword. Exclusion takes precedence over inclusion.
func IsExcludedLink(text string) bool {
	t := strings.ToLower(text)
	for _, k := range exclusionKeywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// HasAllowedPath reports whether the link path matches one of the known
// statement-serving path prefixes.
func HasAllowedPath(href string) bool {
	h := strings.ToLower(href)
	for _, p := range allowedPathPrefixes {
		if strings.Contains(h, p) {
			return true
		}
	}
	return false
}

// IndexURLs returns the candidate index page locations for a year, in the
// order they should be attempted. The rolling calendar page is only a
// candidate for recent years; it serves multiple years at once, which the
// per-link year consistency check compensates for.
func IndexURLs(year int) []string {
	y := strconv.Itoa(year)
	urls := []string{
		BaseURL + "/monetarypolicy/fomccalendars" + y + ".htm",
		BaseURL + "/monetarypolicy/fomchistorical" + y + ".htm",
	}
	if year >= RollingCalendarYear {
		urls = append(urls, BaseURL+"/monetarypolicy/fomccalendars.htm")
	}
	return urls
}

// FeedURL is the press release feed consulted as a last-resort discovery
// source for recent years.
const FeedURL = BaseURL + "/feeds/press_monetary.xml"
