package sql

// Statement is the common interface for all parsed commands.
type Statement interface {
	stmtNode()
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []Column
}

// CreateIndexStmt represents CREATE INDEX name ON table (column).
// IndexName is accepted but indexes are keyed by column.
type CreateIndexStmt struct {
	IndexName  string
	TableName  string
	ColumnName string
}

// InsertStmt represents INSERT INTO table [(cols)] VALUES (literals).
// Values stay raw: they are converted once the target column kinds are known.
type InsertStmt struct {
	TableName string
	Columns   []string // nil when the column list was omitted
	Values    []string
}

// SelectStmt represents SELECT cols FROM table [WHERE ...].
type SelectStmt struct {
	TableName string
	Columns   []string // nil for SELECT *
	Where     *WhereExpr
}

// UpdateStmt represents UPDATE table SET col=lit[, ...] [WHERE ...].
type UpdateStmt struct {
	TableName   string
	Assignments []Assignment
	Where       *WhereExpr
}

// DeleteStmt represents DELETE FROM table [WHERE ...].
type DeleteStmt struct {
	TableName string
	Where     *WhereExpr
}

// PrintTableStmt represents PRINT TABLE table.
type PrintTableStmt struct {
	TableName string
}

// WhereExpr is the single "column operator literal" comparison of a WHERE
// clause. Literal is the raw token exactly as written.
type WhereExpr struct {
	Column  string
	Op      string
	Literal string
}

// Assignment is one "column = literal" pair of a SET clause.
type Assignment struct {
	Column  string
	Literal string
}

func (*CreateTableStmt) stmtNode() {}
func (*CreateIndexStmt) stmtNode() {}
func (*InsertStmt) stmtNode()      {}
func (*SelectStmt) stmtNode()      {}
func (*UpdateStmt) stmtNode()      {}
func (*DeleteStmt) stmtNode()      {}
func (*PrintTableStmt) stmtNode()  {}
