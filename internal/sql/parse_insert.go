package sql

// parseInsert parses:
//
//	INSERT INTO users (1, 'Alice', true)
//
// Values stay raw text; numeric and quoted literals are both accepted.
func (p *parser) parseInsert() (Statement, error) {
	p.next() // INSERT

	tok, ok := p.next()
	if !ok || !tok.isKeyword("INTO") {
		return nil, syntaxErr("Expected 'INTO' keyword")
	}

	tableName, err := p.expectIdentifier("Expected table name")
	if err != nil {
		return nil, err
	}

	if err := p.expectPunct('(', "Expected '('"); err != nil {
		return nil, err
	}

	var values []string
	for {
		tok, ok := p.next()
		if !ok {
			return nil, syntaxErr("Unexpected end for value")
		}
		if tok.Type != TokenLiteral && tok.Type != TokenNumeric {
			return nil, syntaxErr("Expected value, got " + tok.String())
		}
		values = append(values, tok.Value)

		tok, ok = p.peek()
		if ok && tok.isPunct(',') {
			p.next()
			continue
		}
		if ok && tok.isPunct(')') {
			p.next()
			break
		}
		return nil, syntaxErr("Expected ',' or ')'")
	}

	return &InsertStmt{
		TableName: tableName,
		Values:    values,
	}, nil
}
