package storage

import (
	"errors"
	"fmt"

	"sqlr/internal/sql"
)

var (
	// ErrTableNotFound is returned when a statement names an unknown table.
	ErrTableNotFound = errors.New("table does not exist")

	// ErrTableExists is returned when CREATE TABLE reuses a name.
	ErrTableExists = errors.New("table already exists")

	// ErrColumnCount is returned when an insert carries the wrong number of values.
	ErrColumnCount = errors.New("column count doesn't match value count")
)

// TableError ties a lookup failure to the table name involved.
type TableError struct {
	Table string
	Err   error
}

func (e *TableError) Error() string {
	switch e.Err {
	case ErrTableNotFound:
		return fmt.Sprintf("Table '%s' does not exist.", e.Table)
	case ErrTableExists:
		return fmt.Sprintf("Table '%s' already exists.", e.Table)
	default:
		return fmt.Sprintf("Table '%s': %v", e.Table, e.Err)
	}
}

func (e *TableError) Unwrap() error { return e.Err }

// Engine is a storage engine holding named tables.
//
// Implementations are not safe for concurrent use; callers serialize access.
type Engine interface {
	// CreateTable registers a new empty table with the given schema.
	CreateTable(name string, cols []sql.Column) error

	// Insert coerces the raw values against the table schema and appends
	// the resulting row. On error the table is left unchanged.
	Insert(tableName string, raw []string) error

	// Scan returns a copy of every row in insertion order.
	Scan(tableName string) ([]sql.Row, error)

	// TableSchema returns a copy of the table's columns.
	TableSchema(tableName string) ([]sql.Column, error)

	// ListTables returns all table names, sorted.
	ListTables() []string
}

// CountError reports an insert whose value count differs from the schema.
type CountError struct {
	Expected int
	Got      int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("Column count doesn't match value count. Expected %d, got %d.", e.Expected, e.Got)
}

func (e *CountError) Is(target error) bool { return target == ErrColumnCount }

// ColumnError wraps a value that could not be converted for a column.
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("Error converting value for column '%s': %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }
