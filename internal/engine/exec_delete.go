package engine

import (
	"fmt"

	"hexaDB/internal/sql"
)

// executeDelete removes matching rows; without WHERE it empties the table.
func (e *DBEngine) executeDelete(stmt *sql.DeleteStmt) (*Result, error) {
	t, err := e.store.Table(stmt.TableName)
	if err != nil {
		return nil, err
	}

	n, err := t.DeleteRows(stmt.Where)
	if err != nil {
		return nil, err
	}
	return message(fmt.Sprintf("Rows deleted from table '%s'", t.Name()), t.Name(), n), nil
}
