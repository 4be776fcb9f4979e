package engine

import (
	"fmt"

	"sqlr/internal/sql"
)

// SelectAll returns every column name and every row of the given table.
func (e *DBEngine) SelectAll(tableName string) ([]string, []sql.Row, error) {
	if !e.started {
		return nil, nil, fmt.Errorf("engine not started")
	}

	cols, err := e.store.TableSchema(tableName)
	if err != nil {
		return nil, nil, err
	}

	rows, err := e.store.Scan(tableName)
	if err != nil {
		return nil, nil, err
	}

	return sql.ColumnNames(cols), rows, nil
}

// projectColumns returns only the requested columns (in that order).
// requestedCols is the list from SELECT (e.g. ["id", "name"]).
func projectColumns(table string, allCols []string, rows []sql.Row, requestedCols []string) ([]string, []sql.Row, error) {
	colIndex := make(map[string]int, len(allCols))
	for i, name := range allCols {
		colIndex[name] = i
	}

	indexes := make([]int, len(requestedCols))
	for i, name := range requestedCols {
		idx, ok := colIndex[name]
		if !ok {
			return nil, nil, fmt.Errorf("Column '%s' does not exist in table '%s'.", name, table)
		}
		indexes[i] = idx
	}

	outCols := make([]string, len(requestedCols))
	copy(outCols, requestedCols)

	outRows := make([]sql.Row, 0, len(rows))
	for _, r := range rows {
		proj := make(sql.Row, len(indexes))
		for i, idx := range indexes {
			proj[i] = r[idx]
		}
		outRows = append(outRows, proj)
	}

	return outCols, outRows, nil
}
