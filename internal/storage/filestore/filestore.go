package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"

	"hexaDB/internal/sql"
	"hexaDB/internal/storage"
)

// CompressedExt marks files whose text payload is wrapped in the snappy
// framing format.
const CompressedExt = ".sz"

// FileStore persists whole-database snapshots as text files.
//
// Relative paths are resolved against dir; an empty dir leaves them relative
// to the working directory.
type FileStore struct {
	dir string
}

var _ storage.Persister = (*FileStore)(nil)

// New creates a FileStore rooted at dir, creating dir if needed.
func New(dir string) (*FileStore, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: filestore: create dir: %w", sql.ErrFileIO, err)
		}
	}
	return &FileStore{dir: dir}, nil
}

// Path resolves name the way Save and Load do.
func (fs *FileStore) Path(name string) string {
	if fs.dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(fs.dir, name)
}

func compressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), CompressedExt)
}

// Save writes snap to a temporary file next to path and renames it into
// place, so an existing file is never left half-written.
func (fs *FileStore) Save(name string, snap *storage.Snapshot) error {
	path := fs.Path(name)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: filestore: create temp file for %s: %w", sql.ErrFileIO, path, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	var w io.Writer = tmp
	var sw *snappy.Writer
	if compressed(path) {
		sw = snappy.NewBufferedWriter(tmp)
		w = sw
	}

	if err := Encode(w, snap); err != nil {
		return fmt.Errorf("%w: filestore: write %s: %w", sql.ErrFileIO, path, err)
	}
	if sw != nil {
		if err := sw.Close(); err != nil {
			return fmt.Errorf("%w: filestore: flush %s: %w", sql.ErrFileIO, path, err)
		}
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: filestore: sync %s: %w", sql.ErrFileIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: filestore: close %s: %w", sql.ErrFileIO, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: filestore: replace %s: %w", sql.ErrFileIO, path, err)
	}
	committed = true
	return nil
}

// Load reads and decodes the snapshot stored at name.
func (fs *FileStore) Load(name string) (*storage.Snapshot, error) {
	path := fs.Path(name)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: filestore: open %s: %w", sql.ErrFileIO, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if compressed(path) {
		r = snappy.NewReader(f)
	}

	snap, err := Decode(r)
	if err != nil {
		// A corrupt snappy stream surfaces as a read error; it is a
		// malformed file, not an I/O failure.
		if errors.Is(err, snappy.ErrCorrupt) {
			return nil, fmt.Errorf("%w: %s: %v", sql.ErrMalformedPersistedFile, path, snappy.ErrCorrupt)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}
