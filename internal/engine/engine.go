package engine

import (
	"fmt"
	"log/slog"

	"sqlr/internal/sql"
	"sqlr/internal/storage"
)

// DBEngine executes parsed statements against a storage engine.
// It holds no lock; callers that share an engine between goroutines must
// serialize every call.
type DBEngine struct {
	started bool
	store   storage.Engine
	logger  *slog.Logger
}

// Option configures a DBEngine.
type Option func(*DBEngine)

// WithLogger sets the logger used for execution events.
func WithLogger(l *slog.Logger) Option {
	return func(e *DBEngine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates a new DBEngine on top of store.
func New(store storage.Engine, opts ...Option) *DBEngine {
	e := &DBEngine{
		started: false,
		store:   store,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start runs initialization steps for the engine.
func (e *DBEngine) Start() error {
	if e.started {
		return fmt.Errorf("engine already started")
	}
	e.started = true
	e.logger.Debug("engine started")
	return nil
}

// ListTables returns the names of all tables in the storage engine.
func (e *DBEngine) ListTables() ([]string, error) {
	if !e.started {
		return nil, fmt.Errorf("engine not started")
	}

	return e.store.ListTables(), nil
}

// TableSchema returns the column definitions for a table.
func (e *DBEngine) TableSchema(name string) ([]sql.Column, error) {
	if !e.started {
		return nil, fmt.Errorf("engine not started")
	}

	return e.store.TableSchema(name)
}
