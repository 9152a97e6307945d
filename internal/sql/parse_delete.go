package sql

// parseDelete parses the rest of:
//
//	DELETE FROM tableName [WHERE column op literal]
//
// Without WHERE every row is deleted.
func (p *parser) parseDelete() (Statement, error) {
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

	return &DeleteStmt{
		TableName: tableName,
		Where:     where,
	}, nil
}
