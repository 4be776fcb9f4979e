// Package session embeds a database engine for one interactive client.
//
// A Session owns a fresh in-memory store, a started engine, an optional
// cache of parsed statements and a logger tagged with the session id.
// All methods are safe for concurrent use: engine calls are serialized
// behind a single mutex.
package session

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"sqlr/internal/engine"
	"sqlr/internal/logging"
	"sqlr/internal/sql"
	"sqlr/internal/storage/memstore"
)

// DefaultCacheSize is the number of parsed statements kept by default.
const DefaultCacheSize = 128

// Result is the outcome of executing one statement.
type Result struct {
	Statement sql.Statement
	Columns   []string
	Rows      []sql.Row
}

// Session is one embedded database.
type Session struct {
	mu     sync.Mutex
	id     string
	eng    *engine.DBEngine
	cache  *lru.Cache[string, sql.Statement]
	strict bool
	logger *slog.Logger

	cacheSize int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the base logger. The session adds its id to every record.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStrict makes the session reject input the tokenizer cannot fully
// account for, instead of silently skipping it.
func WithStrict(strict bool) Option {
	return func(s *Session) { s.strict = strict }
}

// WithCacheSize sets how many parsed statements are kept. Zero disables
// the cache.
func WithCacheSize(n int) Option {
	return func(s *Session) { s.cacheSize = n }
}

// New opens a session with an empty database.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		id:        uuid.NewString(),
		logger:    logging.Discard(),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.cacheSize < 0 {
		return nil, fmt.Errorf("invalid cache size %d", s.cacheSize)
	}
	if s.cacheSize > 0 {
		cache, err := lru.New[string, sql.Statement](s.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create statement cache: %w", err)
		}
		s.cache = cache
	}

	s.logger = s.logger.With(slog.String("session_id", s.id))

	store := memstore.New(memstore.WithLogger(s.logger))
	s.eng = engine.New(store, engine.WithLogger(s.logger))
	if err := s.eng.Start(); err != nil {
		return nil, fmt.Errorf("start engine: %w", err)
	}

	s.logger.Info("session opened",
		slog.Bool("strict", s.strict),
		slog.Int("cache_size", s.cacheSize),
	)
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Parse turns statement text into a Statement, consulting the cache first.
// Cached statements are shared and must not be modified by callers.
func (s *Session) Parse(text string) (sql.Statement, error) {
	key := strings.TrimSpace(text)

	if s.cache != nil {
		if stmt, ok := s.cache.Get(key); ok {
			s.logger.Debug("statement cache hit")
			return stmt, nil
		}
	}

	var (
		stmt sql.Statement
		err  error
	)
	if s.strict {
		var tokens []sql.Token
		tokens, err = sql.TokenizeStrict(key)
		if err != nil {
			return nil, err
		}
		stmt, err = sql.ParseTokens(tokens)
	} else {
		stmt, err = sql.Parse(key)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Add(key, stmt)
	}
	return stmt, nil
}

// Exec parses and executes one statement.
func (s *Session) Exec(text string) (*Result, error) {
	stmt, err := s.Parse(text)
	if err != nil {
		return nil, err
	}
	return s.ExecStatement(stmt)
}

// ExecStatement executes an already parsed statement.
func (s *Session) ExecStatement(stmt sql.Statement) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cols, rows, err := s.eng.Execute(stmt)
	if err != nil {
		return nil, err
	}
	return &Result{Statement: stmt, Columns: cols, Rows: rows}, nil
}

// ListTables returns the names of all tables, sorted.
func (s *Session) ListTables() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.eng.ListTables()
}

// Schema returns the CREATE TABLE statement describing a table.
func (s *Session) Schema(table string) (*sql.CreateTableStmt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cols, err := s.eng.TableSchema(table)
	if err != nil {
		return nil, err
	}
	return &sql.CreateTableStmt{TableName: table, Columns: cols}, nil
}

// CachedStatements returns the number of parsed statements in the cache.
func (s *Session) CachedStatements() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}
