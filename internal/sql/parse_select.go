package sql

// parseSelect parses:
//
//	SELECT col1, col2 FROM tableName
//
// There is no wildcard; every column is named.
func (p *parser) parseSelect() (Statement, error) {
	p.next() // SELECT

	var columns []string
	for {
		col, err := p.expectIdentifier("Expected column name")
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)

		tok, ok := p.next()
		if ok && tok.isPunct(',') {
			continue
		}
		if ok && tok.isKeyword("FROM") {
			break
		}
		return nil, syntaxErr("Expected column name or 'FROM'")
	}

	tableName, err := p.expectIdentifier("Expected table name")
	if err != nil {
		return nil, err
	}

	return &SelectStmt{
		Columns:   columns,
		TableName: tableName,
	}, nil
}
