package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mwalczak/fedtext"
)

// Ensure ArtifactStore implements fedtext.ArtifactStore at compile time.
var _ fedtext.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore persists extracted statement texts as UTF-8 .txt files,
// one per statement, in a flat directory. Publication is atomic: the text
// is written to a temporary sibling and renamed into place, so an
// interrupted run can never leave a truncated file masquerading as a
// completed artifact.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates an ArtifactStore rooted at the given directory.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

// Dir returns the artifact directory.
func (s *ArtifactStore) Dir() string {
	return s.dir
}

// Exists reports whether an artifact has already been published under its
// final name. Pending temporary files do not count.
func (s *ArtifactStore) Exists(name string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Write publishes an artifact atomically.
func (s *ArtifactStore) Write(ctx context.Context, name string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	final := filepath.Join(s.dir, name)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, final)
}

// Names returns the published artifact filenames in lexical order. Because
// dated artifacts are named <YYYY-MM-DD>.txt, lexical order is
// chronological order, which is what the downstream drift comparison
// relies on.
func (s *ArtifactStore) Names() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
