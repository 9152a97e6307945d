package sql

import "errors"

// Error kinds returned by the parser, the storage containers and the
// persistence codec. Callers match them with errors.Is; the wrapping error
// carries the table, column, literal or line at fault.
var (
	ErrTableNotFound          = errors.New("table not found")
	ErrTableAlreadyExists     = errors.New("table already exists")
	ErrColumnNotFound         = errors.New("column not found")
	ErrDuplicateColumn        = errors.New("duplicate column")
	ErrArityMismatch          = errors.New("arity mismatch")
	ErrTypeConversion         = errors.New("type conversion failed")
	ErrTypeMismatch           = errors.New("type mismatch")
	ErrUnsupportedOperator    = errors.New("unsupported operator")
	ErrMalformedCommand       = errors.New("malformed command")
	ErrFileIO                 = errors.New("file i/o")
	ErrMalformedPersistedFile = errors.New("malformed database file")
)
