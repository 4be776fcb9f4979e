package sql

import (
	"strconv"
	"strings"
)

// parseCreate parses:
//
//	CREATE TABLE name (col TYPE, ...)
func (p *parser) parseCreate() (Statement, error) {
	p.next() // CREATE

	tok, ok := p.peek()
	if !ok || !tok.isKeyword("TABLE") {
		return nil, syntaxErr("Unknown create statement")
	}
	p.next() // TABLE

	tableName, err := p.expectIdentifier("Expected table name")
	if err != nil {
		return nil, err
	}

	if err := p.expectPunct('(', "Expected '('"); err != nil {
		return nil, err
	}

	var columns []Column
	seen := make(map[string]struct{})
	for {
		colName, err := p.expectIdentifier("Expected column name")
		if err != nil {
			return nil, err
		}
		if _, dup := seen[colName]; dup {
			return nil, syntaxErr("Duplicate column name '" + colName + "'")
		}
		seen[colName] = struct{}{}

		dt, err := p.parseDataType()
		if err != nil {
			return nil, err
		}

		columns = append(columns, Column{Name: colName, Type: dt})

		tok, ok := p.peek()
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

	return &CreateTableStmt{
		TableName: tableName,
		Columns:   columns,
	}, nil
}

func (p *parser) parseDataType() (DataType, error) {
	tok, ok := p.next()
	if !ok {
		return DataType{}, syntaxErr("Unexpected end of input")
	}
	if tok.Type != TokenDataType {
		return DataType{}, syntaxErr("Expected data type")
	}

	switch strings.ToUpper(tok.Value) {
	case "INT", "INTEGER":
		return TypeInt, nil
	case "DATE":
		return TypeDate, nil
	case "FLOAT":
		return TypeFloat, nil
	case "CHAR":
		return TypeChar, nil
	case "BOOLEAN", "BOOL":
		return TypeBoolean, nil
	case "VARCHAR":
		return p.parseVarcharSize()
	default:
		return DataType{}, syntaxErr("Unknown data type")
	}
}

// parseVarcharSize parses the "(n)" suffix of VARCHAR.
func (p *parser) parseVarcharSize() (DataType, error) {
	if err := p.expectPunct('(', "Expected '(' after VARCHAR"); err != nil {
		return DataType{}, err
	}

	tok, ok := p.next()
	if !ok || tok.Type != TokenNumeric {
		return DataType{}, syntaxErr("Expected size in VARCHAR")
	}
	size, err := strconv.ParseUint(tok.Value, 10, 31)
	if err != nil {
		return DataType{}, syntaxErr("Invalid size in VARCHAR")
	}

	if err := p.expectPunct(')', "Expected ')' after VARCHAR size"); err != nil {
		return DataType{}, err
	}

	return TypeVarchar(int(size)), nil
}
