package sql

import "fmt"

// parseUpdate parses the rest of:
//
//	UPDATE tableName SET col1 = value1, col2 = value2 [WHERE column op literal]
func (p *parser) parseUpdate() (Statement, error) {
	tableName, err := p.name("table name after UPDATE")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("SET"); err != nil {
		return nil, err
	}

	var assignments []Assignment
	for {
		a, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)

		if p.peek().Kind != TokenComma {
			break
		}
		p.next()
	}

	where, err := p.parseWhere()
	if err != nil {
		return nil, err
	}

	return &UpdateStmt{
		TableName:   tableName,
		Assignments: assignments,
		Where:       where,
	}, nil
}

// parseAssignment parses "column = literal". The literal is the raw source
// text up to the next comma, WHERE or end of command.
func (p *parser) parseAssignment() (Assignment, error) {
	col, err := p.name("column name in SET clause")
	if err != nil {
		return Assignment{}, err
	}
	eq := p.next()
	if eq.Kind != TokenOperator || eq.Text != "=" {
		return Assignment{}, fmt.Errorf("%w: expected '=' after %q in SET clause, got %s", ErrMalformedCommand, col, describe(eq))
	}

	start := p.pos
	for {
		t := p.peek()
		if t.Kind == TokenEOF || t.Kind == TokenComma || t.IsKeyword("WHERE") {
			break
		}
		p.next()
	}
	lit := p.span(start, p.pos)
	if lit == "" {
		return Assignment{}, fmt.Errorf("%w: missing value for %q in SET clause", ErrMalformedCommand, col)
	}

	return Assignment{Column: col, Literal: lit}, nil
}
