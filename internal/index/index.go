package index

import "hexaDB/internal/sql"

// Index maps each distinct value of one column to the positions of the rows
// holding it. Positions inside a bucket are kept in ascending row order.
type Index struct {
	column  string
	buckets map[sql.Value][]int
}

// New creates an empty index for column.
func New(column string) *Index {
	return &Index{
		column:  column,
		buckets: make(map[sql.Value][]int),
	}
}

// Column returns the indexed column name as it was declared.
func (x *Index) Column() string {
	return x.column
}

// Add records that the row at pos holds v. Callers add positions in
// increasing order.
func (x *Index) Add(v sql.Value, pos int) {
	x.buckets[v] = append(x.buckets[v], pos)
}

// Search returns a copy of the positions holding v, or nil.
func (x *Index) Search(v sql.Value) []int {
	b := x.buckets[v]
	if len(b) == 0 {
		return nil
	}
	out := make([]int, len(b))
	copy(out, b)
	return out
}

// Rebuild discards every bucket and rescans rows, reading the value at
// column offset col.
func (x *Index) Rebuild(rows []sql.Row, col int) {
	x.buckets = make(map[sql.Value][]int, len(x.buckets))
	for pos, r := range rows {
		x.Add(r[col], pos)
	}
}

// Len returns the number of distinct values.
func (x *Index) Len() int {
	return len(x.buckets)
}

// Buckets returns a copy of the whole value -> positions mapping.
func (x *Index) Buckets() map[sql.Value][]int {
	out := make(map[sql.Value][]int, len(x.buckets))
	for v, b := range x.buckets {
		cp := make([]int, len(b))
		copy(cp, b)
		out[v] = cp
	}
	return out
}
