package memstore

import (
	"fmt"
	"slices"
	"strings"

	"hexaDB/internal/sql"
	"hexaDB/internal/storage"
)

// Store is a named database: a set of tables keyed by case-insensitive name.
type Store struct {
	name   string
	tables map[string]*Table // key: lower-cased table name
}

// New creates an empty database.
func New(name string) *Store {
	return &Store{
		name:   name,
		tables: make(map[string]*Table),
	}
}

func tableKey(name string) string {
	return strings.ToLower(name)
}

// Name returns the database name.
func (s *Store) Name() string {
	return s.name
}

// CreateTable adds a new table with the given columns.
// Nothing is created if the name is taken or two columns share a name.
func (s *Store) CreateTable(name string, cols []sql.Column) (*Table, error) {
	if _, exists := s.tables[tableKey(name)]; exists {
		return nil, fmt.Errorf("%w: table '%s' already exists", sql.ErrTableAlreadyExists, name)
	}

	t := NewTable(name)
	for _, c := range cols {
		if t.ColumnIndex(c.Name) != -1 {
			return nil, fmt.Errorf("%w: column '%s' declared twice in table '%s'", sql.ErrDuplicateColumn, c.Name, name)
		}
		t.AddColumn(c)
	}

	s.tables[tableKey(name)] = t
	return t, nil
}

// Table looks a table up by name, ignoring case.
func (s *Store) Table(name string) (*Table, error) {
	t, ok := s.tables[tableKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: table '%s' does not exist", sql.ErrTableNotFound, name)
	}
	return t, nil
}

// Tables returns every table ordered by lower-cased name.
func (s *Store) Tables() []*Table {
	keys := make([]string, 0, len(s.tables))
	for k := range s.tables {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]*Table, len(keys))
	for i, k := range keys {
		out[i] = s.tables[k]
	}
	return out
}

// Len returns the number of tables.
func (s *Store) Len() int {
	return len(s.tables)
}

// Snapshot copies the whole database. Indexes are not part of it.
func (s *Store) Snapshot() *storage.Snapshot {
	snap := &storage.Snapshot{Name: s.name}
	for _, t := range s.Tables() {
		snap.Tables = append(snap.Tables, storage.TableSnapshot{
			Name:    t.Name(),
			Columns: t.Columns(),
			Rows:    t.Rows(),
		})
	}
	return snap
}

// FromSnapshot builds a new store holding the snapshot's tables and rows.
// Every row goes through the same arity and kind checks as an insert, so a
// snapshot that would produce an inconsistent table is rejected whole.
func FromSnapshot(snap *storage.Snapshot) (*Store, error) {
	s := New(snap.Name)
	for _, ts := range snap.Tables {
		t, err := s.CreateTable(ts.Name, ts.Columns)
		if err != nil {
			return nil, err
		}
		for i, r := range ts.Rows {
			if err := t.InsertRow(r); err != nil {
				return nil, fmt.Errorf("table '%s' row %d: %w", ts.Name, i, err)
			}
		}
	}
	return s, nil
}
