package engine

import "hexaDB/internal/sql"

// executeSelect runs SELECT. For SELECT * every column is returned in schema
// order; otherwise the requested columns in the requested order.
func (e *DBEngine) executeSelect(stmt *sql.SelectStmt) (*Result, error) {
	t, err := e.store.Table(stmt.TableName)
	if err != nil {
		return nil, err
	}

	var cols []sql.Column
	if stmt.Columns == nil {
		cols = t.Columns()
	} else {
		cols = make([]sql.Column, len(stmt.Columns))
		for i, name := range stmt.Columns {
			c, _, err := t.Column(name)
			if err != nil {
				return nil, err
			}
			cols[i] = c
		}
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}

	rows, err := t.SelectRows(names, stmt.Where)
	if err != nil {
		return nil, err
	}

	return &Result{
		Kind:      KindSelect,
		Table:     t.Name(),
		Columns:   cols,
		Rows:      rows,
		Projected: stmt.Columns != nil,
	}, nil
}

func (e *DBEngine) executePrintTable(stmt *sql.PrintTableStmt) (*Result, error) {
	t, err := e.store.Table(stmt.TableName)
	if err != nil {
		return nil, err
	}
	return &Result{
		Kind:    KindTable,
		Table:   t.Name(),
		Columns: t.Columns(),
		Rows:    t.Rows(),
	}, nil
}
