package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"hexaDB/internal/sql"
	"hexaDB/internal/storage"
	"hexaDB/internal/storage/memstore"
)

// DefaultName is the database name used when none is configured.
const DefaultName = "HexaDB_Instance"

// emptySchema is what DescribeSchema returns for a database without tables.
const emptySchema = "No tables exist in the database yet."

// DBEngine is the main database engine struct.
// It owns the in-memory database and hands whole snapshots to a Persister
// on Save and Load. It is not safe for concurrent use.
type DBEngine struct {
	store  *memstore.Store
	files  storage.Persister
	logger *slog.Logger
}

// New creates an engine around an empty database called name. The name is
// trimmed, as the file format does not keep surrounding spaces.
// files may be nil if Save and Load are never used; a nil logger discards.
func New(name string, files storage.Persister, logger *slog.Logger) *DBEngine {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DBEngine{
		store:  memstore.New(name),
		files:  files,
		logger: logger,
	}
}

// Name returns the name of the current database.
func (e *DBEngine) Name() string {
	return e.store.Name()
}

// GetTable returns the named table for direct inspection.
func (e *DBEngine) GetTable(name string) (*memstore.Table, error) {
	return e.store.Table(name)
}

// Tables returns every table ordered by lower-cased name.
func (e *DBEngine) Tables() []*memstore.Table {
	return e.store.Tables()
}

// DescribeSchema lists every table with its columns and kinds.
func (e *DBEngine) DescribeSchema() string {
	if e.store.Len() == 0 {
		return emptySchema
	}
	var b strings.Builder
	for _, t := range e.store.Tables() {
		b.WriteString(t.Describe())
	}
	return b.String()
}

// Save writes the whole database to path.
func (e *DBEngine) Save(path string) error {
	if e.files == nil {
		return fmt.Errorf("%w: no persistence backend configured", sql.ErrFileIO)
	}

	snap := e.store.Snapshot()
	if err := e.files.Save(path, snap); err != nil {
		return err
	}
	e.logger.Info("database saved", "path", path, "name", snap.Name, "tables", len(snap.Tables))
	return nil
}

// Load replaces the whole database with the one stored at path.
// On any error the current database is left untouched.
func (e *DBEngine) Load(path string) error {
	if e.files == nil {
		return fmt.Errorf("%w: no persistence backend configured", sql.ErrFileIO)
	}

	snap, err := e.files.Load(path)
	if err != nil {
		return err
	}
	store, err := memstore.FromSnapshot(snap)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", sql.ErrMalformedPersistedFile, path, err)
	}

	e.store = store
	e.logger.Info("database loaded", "path", path, "name", store.Name(), "tables", store.Len())
	return nil
}
