package engine

import (
	"fmt"

	"hexaDB/internal/sql"
)

func (e *DBEngine) executeCreateTable(stmt *sql.CreateTableStmt) (*Result, error) {
	t, err := e.store.CreateTable(stmt.TableName, stmt.Columns)
	if err != nil {
		return nil, err
	}
	return message(fmt.Sprintf("Table '%s' created.", t.Name()), t.Name(), 0), nil
}

// executeCreateIndex indexes one column. The index name is accepted but not
// kept: a table has at most one index per column.
func (e *DBEngine) executeCreateIndex(stmt *sql.CreateIndexStmt) (*Result, error) {
	t, err := e.store.Table(stmt.TableName)
	if err != nil {
		return nil, err
	}

	created, err := t.CreateIndex(stmt.ColumnName)
	if err != nil {
		return nil, err
	}
	if !created {
		return message(fmt.Sprintf("Index already exists on column '%s' for table '%s'", stmt.ColumnName, t.Name()), t.Name(), 0), nil
	}
	return message(fmt.Sprintf("Index created on column '%s' for table '%s'", stmt.ColumnName, t.Name()), t.Name(), 0), nil
}
