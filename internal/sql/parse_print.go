package sql

// parsePrint parses the rest of: PRINT TABLE tableName
func (p *parser) parsePrint() (Statement, error) {
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}
	tableName, err := p.name("table name after PRINT TABLE")
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return &PrintTableStmt{TableName: tableName}, nil
}
