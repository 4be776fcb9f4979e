package sql

import (
	"fmt"
	"strings"
)

// Statement is the common interface for all SQL statements.
// The set of implementations is closed: CreateTableStmt, SelectStmt and
// InsertStmt.
type Statement interface {
	fmt.Stringer
	stmtNode()
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []Column
}

func (*CreateTableStmt) stmtNode() {}

// String renders the statement as parseable SQL.
func (s *CreateTableStmt) String() string {
	defs := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		defs[i] = c.Name + " " + c.Type.String()
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", s.TableName, strings.Join(defs, ", "))
}

// SelectStmt represents a parsed SELECT statement. Columns is never empty:
// every projected column is named explicitly.
type SelectStmt struct {
	Columns   []string
	TableName string
}

func (*SelectStmt) stmtNode() {}

func (s *SelectStmt) String() string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(s.Columns, ", "), s.TableName)
}

// InsertStmt represents a parsed INSERT statement. Values keep the raw text
// of each literal; they are coerced against the table schema on execution.
type InsertStmt struct {
	TableName string
	Values    []string
}

func (*InsertStmt) stmtNode() {}

func (s *InsertStmt) String() string {
	vals := make([]string, len(s.Values))
	for i, v := range s.Values {
		vals[i] = quoteLiteral(v)
	}
	return fmt.Sprintf("INSERT INTO %s (%s)", s.TableName, strings.Join(vals, ", "))
}

// quoteLiteral wraps v in quotes the tokenizer will strip again.
func quoteLiteral(v string) string {
	if strings.ContainsRune(v, '\'') {
		return `"` + v + `"`
	}
	return "'" + v + "'"
}
