package memstore

import (
	"fmt"
	"strings"

	"hexaDB/internal/index"
	"hexaDB/internal/sql"
)

// Table owns a column schema, the rows laid out positionally against it and
// the secondary indexes built over some of its columns.
//
// Row positions are offsets into rows and are renumbered by DeleteRows.
type Table struct {
	name    string
	cols    []sql.Column
	rows    []sql.Row
	indexes *index.Manager
}

// NewTable creates an empty table without columns.
func NewTable(name string) *Table {
	return &Table{
		name:    name,
		rows:    make([]sql.Row, 0),
		indexes: index.NewManager(),
	}
}

// Name returns the table name as first declared.
func (t *Table) Name() string {
	return t.name
}

// Columns returns a copy of the schema in declaration order.
func (t *Table) Columns() []sql.Column {
	out := make([]sql.Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// Rows returns a deep copy of every row in position order.
func (t *Table) Rows() []sql.Row {
	out := make([]sql.Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Clone()
	}
	return out
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnIndex returns the position of the named column (case-insensitive),
// or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.cols {
		if c.SameName(name) {
			return i
		}
	}
	return -1
}

// Column resolves a column by name.
func (t *Table) Column(name string) (sql.Column, int, error) {
	i := t.ColumnIndex(name)
	if i == -1 {
		return sql.Column{}, -1, fmt.Errorf("%w: column '%s' not found in table '%s'", sql.ErrColumnNotFound, name, t.name)
	}
	return t.cols[i], i, nil
}

// AddColumn appends a column to the schema. It does not check name
// uniqueness: callers validate the full column list up front.
func (t *Table) AddColumn(col sql.Column) {
	t.cols = append(t.cols, col)
}

// InsertRow appends a row and adds its position to every index.
// The row must have one value per column, each of the column's kind.
func (t *Table) InsertRow(row sql.Row) error {
	if len(row) != len(t.cols) {
		return fmt.Errorf("%w: number of values (%d) doesn't match column count (%d) of table '%s'",
			sql.ErrArityMismatch, len(row), len(t.cols), t.name)
	}

	// Type check each value against the column definition.
	for i, col := range t.cols {
		if row[i].Type != col.Type {
			return fmt.Errorf("%w: column '%s' expects %s, got %s", sql.ErrTypeMismatch, col.Name, col.Type, row[i].Type)
		}
	}

	stored := row.Clone()
	t.rows = append(t.rows, stored)
	pos := len(t.rows) - 1

	for _, idx := range t.indexes.All() {
		if col := t.ColumnIndex(idx.Column()); col != -1 {
			idx.Add(stored[col], pos)
		}
	}
	return nil
}

// CreateIndex builds an index over column by scanning every row.
// If the column is already indexed nothing happens and created is false.
func (t *Table) CreateIndex(column string) (created bool, err error) {
	c, pos, err := t.Column(column)
	if err != nil {
		return false, fmt.Errorf("cannot create index: %w", err)
	}

	idx, created := t.indexes.OpenOrCreate(c.Name)
	if !created {
		return false, nil
	}
	idx.Rebuild(t.rows, pos)
	return true, nil
}

// HasIndex reports whether column is indexed.
func (t *Table) HasIndex(column string) bool {
	_, ok := t.indexes.Get(column)
	return ok
}

// IndexedColumns returns the names of the indexed columns, sorted.
func (t *Table) IndexedColumns() []string {
	all := t.indexes.All()
	out := make([]string, len(all))
	for i, idx := range all {
		out[i] = idx.Column()
	}
	return out
}

// IndexBuckets returns a copy of the value -> positions mapping of the index
// on column.
func (t *Table) IndexBuckets(column string) (map[sql.Value][]int, bool) {
	idx, ok := t.indexes.Get(column)
	if !ok {
		return nil, false
	}
	return idx.Buckets(), true
}

// SelectRows returns, in row order, the projection onto columns of every row
// matching where (all rows when where is nil).
//
// An equality predicate on an indexed column is answered from the index
// bucket; any other predicate is a linear scan. Both give the same rows in
// the same order.
func (t *Table) SelectRows(columns []string, where *sql.WhereExpr) ([]sql.Row, error) {
	proj := make([]int, len(columns))
	for i, name := range columns {
		_, pos, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		proj[i] = pos
	}

	pred, err := t.compilePredicate(where)
	if err != nil {
		return nil, err
	}

	positions, err := t.matchingPositions(pred)
	if err != nil {
		return nil, err
	}

	out := make([]sql.Row, 0, len(positions))
	for _, pos := range positions {
		r := t.rows[pos]
		projected := make(sql.Row, len(proj))
		for i, c := range proj {
			projected[i] = r[c]
		}
		out = append(out, projected)
	}
	return out, nil
}

func (t *Table) matchingPositions(pred *predicate) ([]int, error) {
	if pred != nil && pred.op == "=" {
		if idx, ok := t.indexes.Get(t.cols[pred.col].Name); ok {
			return idx.Search(pred.value), nil
		}
	}

	var out []int
	for i, r := range t.rows {
		ok, err := pred.match(r)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, i)
		}
	}
	return out, nil
}

// UpdateRows applies each assignment in turn. For every assignment it scans
// all rows, sets the column on rows matching where, then rebuilds that
// column's index if there is one. where is re-evaluated on each pass, so a
// pass sees the values written by earlier passes.
//
// Columns, literals and the predicate are validated before any row changes.
// It returns the number of distinct rows written.
func (t *Table) UpdateRows(assignments []sql.Assignment, where *sql.WhereExpr) (int, error) {
	type setOp struct {
		col   int
		value sql.Value
	}

	ops := make([]setOp, 0, len(assignments))
	for _, a := range assignments {
		c, pos, err := t.Column(a.Column)
		if err != nil {
			return 0, fmt.Errorf("SET clause: %w", err)
		}
		v, err := sql.ParseLiteral(c, a.Literal)
		if err != nil {
			return 0, fmt.Errorf("SET clause: %w", err)
		}
		ops = append(ops, setOp{col: pos, value: v})
	}

	pred, err := t.compilePredicate(where)
	if err != nil {
		return 0, err
	}

	touched := make([]bool, len(t.rows))
	affected := 0
	for _, op := range ops {
		for i, r := range t.rows {
			ok, err := pred.match(r)
			if err != nil {
				return affected, err
			}
			if !ok {
				continue
			}
			r[op.col] = op.value
			if !touched[i] {
				touched[i] = true
				affected++
			}
		}

		if idx, ok := t.indexes.Get(t.cols[op.col].Name); ok {
			idx.Rebuild(t.rows, op.col)
		}
	}
	return affected, nil
}

// DeleteRows removes every row matching where (all rows when where is nil),
// keeps the others in their relative order and rebuilds every index.
// It returns the number of rows removed.
func (t *Table) DeleteRows(where *sql.WhereExpr) (int, error) {
	pred, err := t.compilePredicate(where)
	if err != nil {
		return 0, err
	}

	kept := make([]sql.Row, 0, len(t.rows))
	for _, r := range t.rows {
		ok, err := pred.match(r)
		if err != nil {
			return 0, err
		}
		if !ok {
			kept = append(kept, r)
		}
	}

	deleted := len(t.rows) - len(kept)
	t.rows = kept
	t.rebuildIndexes()
	return deleted, nil
}

func (t *Table) rebuildIndexes() {
	for _, idx := range t.indexes.All() {
		if col := t.ColumnIndex(idx.Column()); col != -1 {
			idx.Rebuild(t.rows, col)
		}
	}
}

// Describe renders the schema as "name (KIND)" entries.
func (t *Table) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table: %s\nColumns:\n", t.name)
	for _, c := range t.cols {
		fmt.Fprintf(&b, "- %s (%s)\n", c.Name, c.Type)
	}
	return b.String()
}
