package engine

import (
	"fmt"
	"log/slog"

	"sqlr/internal/sql"
)

// Execute takes a parsed SQL Statement and executes it using the engine.
// SELECT returns the projected column names and rows; CREATE TABLE and
// INSERT return neither.
func (e *DBEngine) Execute(stmt sql.Statement) ([]string, []sql.Row, error) {
	if !e.started {
		return nil, nil, fmt.Errorf("engine not started")
	}

	e.logger.Debug("executing statement", slog.String("kind", statementKind(stmt)))

	switch s := stmt.(type) {
	case *sql.CreateTableStmt:
		err := e.CreateTable(s.TableName, s.Columns)
		return nil, nil, err

	case *sql.InsertStmt:
		err := e.InsertRow(s.TableName, s.Values)
		return nil, nil, err

	case *sql.SelectStmt:
		fullCols, fullRows, err := e.SelectAll(s.TableName)
		if err != nil {
			return nil, nil, err
		}
		return projectColumns(s.TableName, fullCols, fullRows, s.Columns)

	default:
		return nil, nil, fmt.Errorf("unsupported statement type %T", stmt)
	}
}

func statementKind(stmt sql.Statement) string {
	switch stmt.(type) {
	case *sql.CreateTableStmt:
		return "create_table"
	case *sql.InsertStmt:
		return "insert"
	case *sql.SelectStmt:
		return "select"
	default:
		return fmt.Sprintf("%T", stmt)
	}
}
