package sql

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b have the same kind and the same payload.
// Values of different kinds are never equal.
func (a Value) Equal(b Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TypeInt:
		return a.I64 == b.I64
	case TypeText:
		return a.S == b.S
	case TypeReal:
		return a.F64 == b.F64
	default:
		return false
	}
}

// Compare orders two values of the same kind, returning -1, 0 or +1.
// Ordering across kinds is undefined and reported as ErrTypeMismatch.
func (a Value) Compare(b Value) (int, error) {
	if a.Type != b.Type {
		return 0, fmt.Errorf("%w: cannot order %s against %s", ErrTypeMismatch, a.Type, b.Type)
	}
	switch a.Type {
	case TypeInt:
		return compareOrdered(a.I64, b.I64), nil
	case TypeText:
		return compareOrdered(a.S, b.S), nil
	case TypeReal:
		return compareOrdered(a.F64, b.F64), nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %d", ErrTypeMismatch, a.Type)
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders the value without quoting: integers and reals in their
// shortest decimal form, text as-is.
func (a Value) String() string {
	switch a.Type {
	case TypeInt:
		return strconv.FormatInt(a.I64, 10)
	case TypeText:
		return a.S
	case TypeReal:
		return strconv.FormatFloat(a.F64, 'g', -1, 64)
	default:
		return "NULL"
	}
}

// Native returns the payload as a plain Go value (int64, string or float64).
func (a Value) Native() any {
	switch a.Type {
	case TypeInt:
		return a.I64
	case TypeText:
		return a.S
	case TypeReal:
		return a.F64
	default:
		return nil
	}
}

// ParseValue converts the raw token s to a value of kind t. Text is taken
// verbatim, quotes included; use ParseLiteral for command literals.
func ParseValue(t DataType, s string) (Value, error) {
	switch t {
	case TypeInt:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a valid INT", ErrTypeConversion, s)
		}
		return Int(i), nil
	case TypeReal:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a valid REAL", ErrTypeConversion, s)
		}
		return Real(f), nil
	case TypeText:
		return Text(s), nil
	default:
		return Value{}, fmt.Errorf("%w: unknown kind %d", ErrTypeConversion, t)
	}
}

// ParseLiteral converts a literal from a VALUES list or SET clause to a value
// of the column's kind. For TEXT columns one matching pair of surrounding
// quotes (single or double) is stripped.
func ParseLiteral(col Column, lit string) (Value, error) {
	if col.Type == TypeText {
		return Text(Unquote(lit)), nil
	}
	v, err := ParseValue(col.Type, lit)
	if err != nil {
		return Value{}, fmt.Errorf("%w: value %q for column '%s'", ErrTypeConversion, lit, col.Name)
	}
	return v, nil
}

// Unquote strips one matching pair of leading/trailing quote characters.
// Anything else is returned unchanged.
func Unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
