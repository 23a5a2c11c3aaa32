package fedtext

import (
	"regexp"
	"strconv"
)

// DateUnknown is the sentinel returned when no date can be derived from a
// URL. It matches the value written into manifests by the original scraper,
// so manifests remain interchangeable across runs.
const DateUnknown = "Unknown"

var (
	// fullDateRE matches an 8-digit YYYYMMDD run with a 20xx year, e.g.
	// "monetary20081028a.htm".
	fullDateRE = regexp.MustCompile(`(20\d{2})(\d{2})(\d{2})`)

	// yearRE matches a 4-digit 20xx year anywhere in a URL.
	yearRE = regexp.MustCompile(`(20\d{2})`)
)

// DateFromURL derives a canonical YYYY-MM-DD date from a URL. It scans left
// to right and uses the first YYYYMMDD run whose year begins with "20".
// Returns DateUnknown when no such run exists. Total and deterministic: it
// never fails and always returns a value.
func DateFromURL(url string) string {
	m := fullDateRE.FindStringSubmatch(url)
	if m == nil {
		return DateUnknown
	}
	return m[1] + "-" + m[2] + "-" + m[3]
}

// YearFromURL extracts the first 20xx year embedded in a URL. The second
// return value is false when the URL carries no parseable year.
func YearFromURL(url string) (int, bool) {
	m := yearRE.FindStringSubmatch(url)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

// ArtifactName derives the output filename for a manifest row. Rows with a
// real date map to "<date>.txt"; rows carrying the unknown sentinel fall
// back to a "<year>_<index>.txt" composite so the name stays unique.
func ArtifactName(date string, year, index int) string {
	if date == "" || date == DateUnknown {
		return strconv.Itoa(year) + "_" + strconv.Itoa(index) + ".txt"
	}
	return date + ".txt"
}
