package memstore

import (
	"log/slog"
	"sort"

	"sqlr/internal/sql"
	"sqlr/internal/storage"
)

// Option configures a MemEngine.
type Option func(*MemEngine)

// WithLogger sets the logger used for storage events.
func WithLogger(l *slog.Logger) Option {
	return func(e *MemEngine) {
		if l != nil {
			e.logger = l
		}
	}
}

// MemEngine is the in-memory database: a registry of tables keyed by name.
// It does no locking of its own.
type MemEngine struct {
	tables map[string]*Table
	logger *slog.Logger
}

// New creates a new, empty in-memory storage engine.
func New(opts ...Option) *MemEngine {
	e := &MemEngine{
		tables: make(map[string]*Table),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ storage.Engine = (*MemEngine)(nil)

// CreateTable registers a new table. Reusing a name is an error; the
// existing table and its rows are kept.
func (e *MemEngine) CreateTable(name string, cols []sql.Column) error {
	if _, exists := e.tables[name]; exists {
		return &storage.TableError{Table: name, Err: storage.ErrTableExists}
	}

	e.tables[name] = newTable(name, cols, e.logger)
	e.logger.Debug("created table", slog.String("table", name), slog.Int("columns", len(cols)))
	return nil
}

// Table looks up a table by name.
func (e *MemEngine) Table(name string) (*Table, error) {
	t, ok := e.tables[name]
	if !ok {
		return nil, &storage.TableError{Table: name, Err: storage.ErrTableNotFound}
	}
	return t, nil
}

// Insert adds a row, given as raw literal text, into a table.
func (e *MemEngine) Insert(tableName string, raw []string) error {
	t, err := e.Table(tableName)
	if err != nil {
		return err
	}
	return t.Insert(raw)
}

// Scan returns a copy of all rows in the table.
func (e *MemEngine) Scan(tableName string) ([]sql.Row, error) {
	t, err := e.Table(tableName)
	if err != nil {
		return nil, err
	}
	return t.Select(), nil
}

// TableSchema returns a copy of the table's column definitions.
func (e *MemEngine) TableSchema(tableName string) ([]sql.Column, error) {
	t, err := e.Table(tableName)
	if err != nil {
		return nil, err
	}
	return t.Columns(), nil
}

// ListTables returns the names of all tables in sorted order.
func (e *MemEngine) ListTables() []string {
	names := make([]string, 0, len(e.tables))
	for name := range e.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
