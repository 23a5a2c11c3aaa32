// Package fedtext harvests published FOMC statement links and extracts the
// canonical body text of each statement from markup whose structure changed
// repeatedly between 2000 and 2024. It builds a chronologically sorted link
// manifest, then isolates body text with a layered strategy chain (known
// structural containers, a content-density heuristic for the table-layout
// era, and a raw-text fallback), persisting one normalized text artifact per
// statement for downstream sentiment and drift analysis.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/) or concern
// (crawl/, fs/).
package fedtext
