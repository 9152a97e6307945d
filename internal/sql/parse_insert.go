package sql

import (
	"fmt"
	"strings"
)

// parseInsert parses the rest of an INSERT statement.
// Supported forms:
//
//	INSERT INTO people (name, age) VALUES ('Alice', 30)
//	INSERT INTO people VALUES ('Alice', 30)
func (p *parser) parseInsert() (Statement, error) {
	if err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}
	tableName, err := p.name("table name after INTO")
	if err != nil {
		return nil, err
	}

	var columns []string
	if p.peek().Kind == TokenLParen {
		columns, err = p.parenList("INSERT column list")
		if err != nil {
			return nil, err
		}
		for _, c := range columns {
			if len(strings.Fields(c)) != 1 {
				return nil, fmt.Errorf("%w: invalid column name %q in INSERT column list", ErrMalformedCommand, c)
			}
		}
		if columns == nil {
			columns = []string{}
		}
	}

	if err := p.expectKeyword("VALUES"); err != nil {
		return nil, err
	}
	values, err := p.parenList("VALUES list")
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}

	if columns != nil && len(columns) != len(values) {
		return nil, fmt.Errorf("%w: INSERT lists %d columns but %d values", ErrArityMismatch, len(columns), len(values))
	}

	return &InsertStmt{
		TableName: tableName,
		Columns:   columns,
		Values:    values,
	}, nil
}
