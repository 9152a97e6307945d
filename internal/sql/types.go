package sql

import "strings"

// DataType represents the declared kind of a column.
// The numeric values are part of the persisted file format (COLUMN lines).
type DataType int

const (
	TypeInt DataType = iota
	TypeText
	TypeReal
)

func (t DataType) String() string {
	switch t {
	case TypeInt:
		return "INT"
	case TypeText:
		return "TEXT"
	case TypeReal:
		return "REAL"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether t is one of the three supported kinds.
func (t DataType) Valid() bool {
	return t == TypeInt || t == TypeText || t == TypeReal
}

// ParseDataType maps a type keyword (INT, TEXT, REAL; any case) to a DataType.
func ParseDataType(s string) (DataType, bool) {
	switch strings.ToUpper(s) {
	case "INT":
		return TypeInt, true
	case "TEXT":
		return TypeText, true
	case "REAL":
		return TypeReal, true
	default:
		return 0, false
	}
}

// Value represents a single cell in a table (one column in one row).
// Only the field matching Type should be read; other fields remain at their
// zero values, which keeps Value comparable with == and usable as a map key.
type Value struct {
	Type DataType

	I64 int64   // for TypeInt
	S   string  // for TypeText
	F64 float64 // for TypeReal
}

// Int, Text and Real build values of the corresponding kind.
func Int(v int64) Value    { return Value{Type: TypeInt, I64: v} }
func Text(v string) Value  { return Value{Type: TypeText, S: v} }
func Real(v float64) Value { return Value{Type: TypeReal, F64: v} }

// Row represents one record in a table: a slice of Values, one per column.
type Row []Value

// Clone returns a copy of the row that shares no backing array with r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Column describes metadata for a single column in a table.
// Name keeps the case it was declared with; lookups compare case-insensitively.
type Column struct {
	Name string
	Type DataType
}

// SameName reports whether the column is called name, ignoring case.
func (c Column) SameName(name string) bool {
	return strings.EqualFold(c.Name, name)
}
