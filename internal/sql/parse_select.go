package sql

import "fmt"

// parseSelect parses the rest of a SELECT statement.
// Supported forms (case-insensitive keywords, flexible spaces):
//
//	SELECT * FROM people
//	SELECT name, age FROM people WHERE age > 20
//	SELECT name FROM people WHERE name = Alice
func (p *parser) parseSelect() (Statement, error) {
	var columns []string

	if p.peek().Kind == TokenStar {
		p.next()
	} else {
		for {
			t := p.next()
			if t.Kind != TokenWord || t.IsKeyword("FROM") {
				return nil, fmt.Errorf("%w: expected column name in SELECT list, got %s", ErrMalformedCommand, describe(t))
			}
			columns = append(columns, t.Text)
			if p.peek().Kind != TokenComma {
				break
			}
			p.next()
		}
	}

	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	tableName, err := p.name("table name after FROM")
	if err != nil {
		return nil, err
	}

	where, err := p.parseWhere()
	if err != nil {
		return nil, err
	}

	return &SelectStmt{
		TableName: tableName,
		Columns:   columns,
		Where:     where,
	}, nil
}
