package engine

import (
	"fmt"
	"log/slog"
)

// InsertRow inserts one row, given as the raw text of each value in schema
// order. The storage engine coerces each value against its column type.
func (e *DBEngine) InsertRow(tableName string, raw []string) error {
	if !e.started {
		return fmt.Errorf("engine not started")
	}

	if err := e.store.Insert(tableName, raw); err != nil {
		e.logger.Debug("insert rejected", slog.String("table", tableName), slog.Any("error", err))
		return err
	}
	return nil
}
