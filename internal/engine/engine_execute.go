package engine

import (
	"fmt"

	"hexaDB/internal/sql"
)

// Execute parses one command and runs it.
func (e *DBEngine) Execute(command string) (*Result, error) {
	stmt, err := sql.Parse(command)
	if err != nil {
		e.logger.Debug("parse failed", "command", command, "err", err)
		return nil, err
	}

	res, err := e.ExecuteStatement(stmt)
	if err != nil {
		e.logger.Debug("command failed", "command", command, "err", err)
		return nil, err
	}
	e.logger.Debug("command executed", "command", command, "kind", res.Kind.String(), "rows", len(res.Rows), "affected", res.Affected)
	return res, nil
}

// ExecuteStatement takes a parsed Statement and executes it using the engine.
func (e *DBEngine) ExecuteStatement(stmt sql.Statement) (*Result, error) {
	switch s := stmt.(type) {
	case *sql.CreateTableStmt:
		return e.executeCreateTable(s)

	case *sql.CreateIndexStmt:
		return e.executeCreateIndex(s)

	case *sql.InsertStmt:
		return e.executeInsert(s)

	case *sql.SelectStmt:
		return e.executeSelect(s)

	case *sql.UpdateStmt:
		return e.executeUpdate(s)

	case *sql.DeleteStmt:
		return e.executeDelete(s)

	case *sql.PrintTableStmt:
		return e.executePrintTable(s)

	default:
		return nil, fmt.Errorf("%w: unsupported statement type %T", sql.ErrMalformedCommand, stmt)
	}
}
