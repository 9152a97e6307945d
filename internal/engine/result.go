package engine

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"hexaDB/internal/format"
	"hexaDB/internal/sql"
)

// ResultKind tells how a Result is presented.
type ResultKind int

const (
	// KindMessage is a status line from CREATE, INSERT, UPDATE or DELETE.
	KindMessage ResultKind = iota
	// KindSelect carries the rows of a SELECT.
	KindSelect
	// KindTable carries a whole table for PRINT TABLE.
	KindTable
)

func (k ResultKind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindSelect:
		return "select"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Result is the outcome of one command.
type Result struct {
	Kind    ResultKind
	Message string
	Table   string

	// Columns and Rows are set for KindSelect and KindTable; every row has
	// one value per column, in column order.
	Columns []sql.Column
	Rows    []sql.Row

	// Projected is true for SELECT with an explicit column list.
	Projected bool

	// Affected counts rows inserted, updated or deleted.
	Affected int
}

func message(msg, table string, affected int) *Result {
	return &Result{Kind: KindMessage, Message: msg, Table: table, Affected: affected}
}

// noRows is printed for a SELECT that matched nothing.
const noRows = "No rows selected."

// Render writes the human-readable form: the message line, a box for
// SELECT * and PRINT TABLE, or a grid for a projected SELECT.
func (r *Result) Render(w io.Writer) error {
	switch r.Kind {
	case KindMessage:
		_, err := fmt.Fprintln(w, r.Message)
		return err

	case KindSelect:
		if len(r.Rows) == 0 {
			_, err := fmt.Fprintln(w, noRows)
			return err
		}
		if r.Projected {
			headers := make([]string, len(r.Columns))
			for i, c := range r.Columns {
				headers[i] = c.Name
			}
			return format.Grid(w, headers, r.Rows)
		}
		return format.Box(w, r.Table, r.Columns, r.Rows)

	case KindTable:
		return format.Box(w, r.Table, r.Columns, r.Rows)

	default:
		return fmt.Errorf("unknown result kind %d", r.Kind)
	}
}

type jsonColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type jsonResult struct {
	Kind     string       `json:"kind"`
	Table    string       `json:"table,omitempty"`
	Message  string       `json:"message,omitempty"`
	Columns  []jsonColumn `json:"columns,omitempty"`
	Rows     [][]any      `json:"rows,omitempty"`
	Affected int          `json:"affected,omitempty"`
}

// MarshalJSON gives the machine-readable form used by --json output.
func (r *Result) MarshalJSON() ([]byte, error) {
	out := jsonResult{
		Kind:     r.Kind.String(),
		Table:    r.Table,
		Message:  r.Message,
		Affected: r.Affected,
	}
	if r.Kind != KindMessage {
		out.Columns = make([]jsonColumn, len(r.Columns))
		for i, c := range r.Columns {
			out.Columns[i] = jsonColumn{Name: c.Name, Type: c.Type.String()}
		}
		out.Rows = format.RowsNative(r.Rows)
	}
	return json.Marshal(out)
}
