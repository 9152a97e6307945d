package sql

import (
	"fmt"
	"strings"
)

// Parse parses a single command string into a Statement.
// Keywords are case-insensitive; names keep the case they were written in.
func Parse(query string) (Statement, error) {
	// Trim leading & trailing whitespace
	q := strings.TrimSpace(query)

	// Remove trailing semicolon if present
	if strings.HasSuffix(q, ";") {
		q = strings.TrimSpace(q[:len(q)-1])
	}
	if q == "" {
		return nil, fmt.Errorf("%w: empty command", ErrMalformedCommand)
	}

	toks, err := Lex(q)
	if err != nil {
		return nil, err
	}
	p := &parser{src: q, toks: toks}

	head := p.next()
	switch strings.ToUpper(head.Text) {
	case "CREATE":
		kind := p.next()
		switch {
		case kind.IsKeyword("TABLE"):
			return p.parseCreateTable()
		case kind.IsKeyword("INDEX"):
			return p.parseCreateIndex()
		}
		return nil, fmt.Errorf("%w: unsupported CREATE type %q (expected TABLE or INDEX)", ErrMalformedCommand, kind.Text)
	case "INSERT":
		return p.parseInsert()
	case "SELECT":
		return p.parseSelect()
	case "UPDATE":
		return p.parseUpdate()
	case "DELETE":
		return p.parseDelete()
	case "PRINT":
		return p.parsePrint()
	default:
		return nil, fmt.Errorf("%w: unknown command %q (supported: CREATE TABLE, CREATE INDEX, INSERT, SELECT, UPDATE, DELETE, PRINT TABLE)", ErrMalformedCommand, head.Text)
	}
}
