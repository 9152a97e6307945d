package memstore

import (
	"fmt"

	"hexaDB/internal/sql"
)

// predicate is a WHERE clause resolved against a table schema: the column
// offset, a normalized operator and the literal converted to the column kind.
type predicate struct {
	col   int
	op    string
	value sql.Value
}

// compilePredicate resolves where against the table. A nil where yields a
// nil predicate, which matches every row.
//
// The literal is the raw WHERE token: TEXT literals are not unquoted.
// "=" and "==" are aliases; "<" and ">" are only defined on INT columns.
func (t *Table) compilePredicate(where *sql.WhereExpr) (*predicate, error) {
	if where == nil {
		return nil, nil
	}

	col := t.ColumnIndex(where.Column)
	if col == -1 {
		return nil, fmt.Errorf("%w: column '%s' in WHERE clause not found in table '%s'", sql.ErrColumnNotFound, where.Column, t.name)
	}
	kind := t.cols[col].Type

	op := where.Op
	switch op {
	case "=", "==":
		op = "="
	case "!=":
	case "<", ">":
		if kind != sql.TypeInt {
			return nil, fmt.Errorf("%w: '%s' is not defined for %s column '%s'", sql.ErrUnsupportedOperator, op, kind, t.cols[col].Name)
		}
	default:
		return nil, fmt.Errorf("%w: '%s' in WHERE clause", sql.ErrUnsupportedOperator, op)
	}

	v, err := sql.ParseValue(kind, where.Literal)
	if err != nil {
		return nil, fmt.Errorf("invalid value '%s' in WHERE clause for column '%s': %w", where.Literal, t.cols[col].Name, err)
	}

	return &predicate{col: col, op: op, value: v}, nil
}

// match evaluates the predicate against one row.
func (p *predicate) match(row sql.Row) (bool, error) {
	if p == nil {
		return true, nil
	}

	v := row[p.col]
	switch p.op {
	case "=":
		return v.Equal(p.value), nil
	case "!=":
		return !v.Equal(p.value), nil
	case "<", ">":
		c, err := v.Compare(p.value)
		if err != nil {
			return false, err
		}
		if p.op == "<" {
			return c < 0, nil
		}
		return c > 0, nil
	default:
		return false, fmt.Errorf("%w: '%s'", sql.ErrUnsupportedOperator, p.op)
	}
}
