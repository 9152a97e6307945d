package sql

import (
	"fmt"
	"strings"
)

// parseCreateTable parses the rest of:
//
//	CREATE TABLE people (name TEXT, age INT)
func (p *parser) parseCreateTable() (Statement, error) {
	tableName, err := p.name("table name after CREATE TABLE")
	if err != nil {
		return nil, err
	}

	colDefs, err := p.parenList("column definitions")
	if err != nil {
		return nil, fmt.Errorf("CREATE TABLE %s: %w", tableName, err)
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}

	columns := make([]Column, 0, len(colDefs))
	for _, def := range colDefs {
		parts := strings.Fields(def)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: invalid column definition %q in table '%s' (expected: name TYPE)", ErrMalformedCommand, def, tableName)
		}

		dt, ok := ParseDataType(parts[1])
		if !ok {
			return nil, fmt.Errorf("%w: unknown data type %q in table '%s' (expected INT, TEXT or REAL)", ErrMalformedCommand, parts[1], tableName)
		}

		columns = append(columns, Column{Name: parts[0], Type: dt})
	}

	return &CreateTableStmt{
		TableName: tableName,
		Columns:   columns,
	}, nil
}
