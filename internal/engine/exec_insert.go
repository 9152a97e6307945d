package engine

import (
	"fmt"

	"hexaDB/internal/sql"
)

func (e *DBEngine) executeInsert(stmt *sql.InsertStmt) (*Result, error) {
	t, err := e.store.Table(stmt.TableName)
	if err != nil {
		return nil, err
	}
	cols := t.Columns()

	// No column list: values must match schema order.
	if stmt.Columns == nil {
		if len(stmt.Values) != len(cols) {
			return nil, fmt.Errorf("%w: INSERT has %d values, table '%s' has %d columns",
				sql.ErrArityMismatch, len(stmt.Values), t.Name(), len(cols))
		}
		row, err := literalsToRow(cols, stmt.Values)
		if err != nil {
			return nil, err
		}
		if err := t.InsertRow(row); err != nil {
			return nil, err
		}
		return message(fmt.Sprintf("Row inserted into table '%s'", t.Name()), t.Name(), 1), nil
	}

	// Column list present; it must name every column exactly once.
	if len(stmt.Columns) != len(cols) {
		return nil, fmt.Errorf("%w: INSERT names %d columns, table '%s' has %d",
			sql.ErrArityMismatch, len(stmt.Columns), t.Name(), len(cols))
	}
	if len(stmt.Values) != len(stmt.Columns) {
		return nil, fmt.Errorf("%w: INSERT has %d values for %d columns",
			sql.ErrArityMismatch, len(stmt.Values), len(stmt.Columns))
	}

	ordered := make([]string, len(cols))
	seen := make([]bool, len(cols))
	for i, colName := range stmt.Columns {
		_, pos, err := t.Column(colName)
		if err != nil {
			return nil, fmt.Errorf("INSERT: %w", err)
		}
		if seen[pos] {
			return nil, fmt.Errorf("%w: column '%s' appears twice in INSERT column list", sql.ErrDuplicateColumn, colName)
		}
		ordered[pos] = stmt.Values[i]
		seen[pos] = true
	}

	row, err := literalsToRow(cols, ordered)
	if err != nil {
		return nil, err
	}
	if err := t.InsertRow(row); err != nil {
		return nil, err
	}
	return message(fmt.Sprintf("Row inserted into table '%s'", t.Name()), t.Name(), 1), nil
}

// literalsToRow converts raw literals, already in schema order, to a row.
func literalsToRow(cols []sql.Column, lits []string) (sql.Row, error) {
	row := make(sql.Row, len(cols))
	for i, c := range cols {
		v, err := sql.ParseLiteral(c, lits[i])
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}
