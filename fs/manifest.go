// Package fs provides file-based storage: the CSV link manifest and the
// per-statement text artifact directory.
package fs

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mwalczak/fedtext"
)

// manifestHeader is the fixed column layout of the manifest file. The
// column names are shared with the downstream sentiment and drift tooling.
var manifestHeader = []string{"Date", "Year", "Date_Description", "URL"}

// Ensure ManifestStore implements fedtext.ManifestStore at compile time.
var _ fedtext.ManifestStore = (*ManifestStore)(nil)

// ManifestStore reads and writes the link manifest as a UTF-8 CSV file with
// a header row.
type ManifestStore struct {
	path string
}

// NewManifestStore creates a ManifestStore backed by the given file path.
func NewManifestStore(path string) *ManifestStore {
	return &ManifestStore{path: path}
}

// Path returns the manifest file location.
func (s *ManifestStore) Path() string {
	return s.path
}

// Write persists the manifest, replacing any previous one. The file is
// written to a temporary sibling and renamed into place so readers never
// observe a partial manifest.
func (s *ManifestStore) Write(ctx context.Context, records []fedtext.LinkRecord) error {
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(manifestHeader); err != nil {
		f.Close()
		return err
	}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			f.Close()
			os.Remove(tmp)
			return err
		}
		row := []string{rec.Date, strconv.Itoa(rec.Year), rec.Label, rec.URL}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}

// Read loads the manifest in file order. Returns ENOTFOUND when no manifest
// exists at the configured path.
func (s *ManifestStore) Read(ctx context.Context) ([]fedtext.LinkRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fedtext.Errorf(fedtext.ENOTFOUND, "manifest %q not found", s.path)
		}
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fedtext.Errorf(fedtext.EINVALID, "malformed manifest %q: %v", s.path, err)
	}
	if len(rows) == 0 {
		return nil, fedtext.Errorf(fedtext.EINVALID, "manifest %q has no header row", s.path)
	}

	records := make([]fedtext.LinkRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(manifestHeader) {
			return nil, fedtext.Errorf(fedtext.EINVALID, "manifest %q has a malformed row", s.path)
		}
		year, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fedtext.Errorf(fedtext.EINVALID, "manifest %q has a non-integer year %q", s.path, row[1])
		}
		records = append(records, fedtext.LinkRecord{
			Date:  row[0],
			Year:  year,
			Label: row[2],
			URL:   row[3],
		})
	}

	return records, nil
}
