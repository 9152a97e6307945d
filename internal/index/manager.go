package index

import (
	"slices"
	"strings"
)

// Manager holds the indexes of one table, at most one per column.
// Columns are matched case-insensitively.
type Manager struct {
	open map[string]*Index // key: lower-cased column name
}

// NewManager creates an empty index manager.
func NewManager() *Manager {
	return &Manager{open: make(map[string]*Index)}
}

func indexKey(column string) string {
	return strings.ToLower(column)
}

// Get returns the index on column, if one exists.
func (m *Manager) Get(column string) (*Index, bool) {
	idx, ok := m.open[indexKey(column)]
	return idx, ok
}

// OpenOrCreate returns the index on column, creating an empty one if needed.
// created reports whether a new index was made; a new index must be filled
// by the caller with Rebuild.
func (m *Manager) OpenOrCreate(column string) (idx *Index, created bool) {
	k := indexKey(column)
	if idx, ok := m.open[k]; ok {
		return idx, false
	}
	idx = New(column)
	m.open[k] = idx
	return idx, true
}

// All returns every index ordered by column name.
func (m *Manager) All() []*Index {
	keys := make([]string, 0, len(m.open))
	for k := range m.open {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]*Index, len(keys))
	for i, k := range keys {
		out[i] = m.open[k]
	}
	return out
}

// Len returns the number of indexed columns.
func (m *Manager) Len() int {
	return len(m.open)
}
