package engine

import (
	"fmt"

	"hexaDB/internal/sql"
)

func (e *DBEngine) executeUpdate(stmt *sql.UpdateStmt) (*Result, error) {
	t, err := e.store.Table(stmt.TableName)
	if err != nil {
		return nil, err
	}

	n, err := t.UpdateRows(stmt.Assignments, stmt.Where)
	if err != nil {
		return nil, err
	}
	return message(fmt.Sprintf("Rows updated in table '%s'", t.Name()), t.Name(), n), nil
}
