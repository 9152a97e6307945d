package sql

import (
	"fmt"
	"strings"
)

// parseCreateIndex parses the rest of:
//
//	CREATE INDEX index_name ON table_name (column_name)
func (p *parser) parseCreateIndex() (Statement, error) {
	indexName, err := p.name("index name after CREATE INDEX")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("ON"); err != nil {
		return nil, err
	}
	tableName, err := p.name("table name after ON")
	if err != nil {
		return nil, err
	}

	cols, err := p.parenList("index column")
	if err != nil {
		return nil, err
	}
	if len(cols) != 1 || len(strings.Fields(cols[0])) != 1 {
		return nil, fmt.Errorf("%w: CREATE INDEX %s expects exactly one column in parentheses", ErrMalformedCommand, indexName)
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}

	return &CreateIndexStmt{
		IndexName:  indexName,
		TableName:  tableName,
		ColumnName: cols[0],
	}, nil
}
