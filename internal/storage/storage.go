package storage

import "hexaDB/internal/sql"

// Snapshot is a self-contained copy of a whole database: its name and every
// table with schema and rows. It is the unit exchanged between the in-memory
// containers and a persistence backend, so neither depends on the other.
type Snapshot struct {
	Name   string
	Tables []TableSnapshot
}

// TableSnapshot is one table of a Snapshot. Rows are in row-position order.
type TableSnapshot struct {
	Name    string
	Columns []sql.Column
	Rows    []sql.Row
}

// Persister saves and restores whole-database snapshots.
//
// Different implementations are possible:
//   - the line-oriented text file (filestore)
//   - a compressed variant of the same payload
type Persister interface {
	// Save externalizes snap to path, replacing any previous content.
	Save(path string, snap *Snapshot) error

	// Load reads a snapshot back. It returns either a complete snapshot or
	// an error, never a partial result.
	Load(path string) (*Snapshot, error)
}
