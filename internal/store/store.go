// Package store owns the single relational table — git_objects — that
// backs PersistentFS. It understands rows and chunks; it knows nothing
// about POSIX error codes or path semantics, which live one layer up
// in internal/persistentfs.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// ChunkSize is the fixed chunk boundary, 1,843,200 bytes exactly
// (spec.md §6.2). It is process-wide immutable: already-stored files
// retain their original chunk boundaries on read; only new writes use
// whatever this build was compiled with.
const ChunkSize = 1800 * 1024

// Config mirrors the teacher's db.Config: DSN assembly plus the
// pragmas a single-writer SQLite store needs.
type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// DefaultConfig returns sensible defaults for a repository-local store.
func DefaultConfig(path string) Config {
	return Config{
		Path:        path,
		BusyTimeout: 5 * time.Second,
	}
}

// Store wraps the SQLite connection for one repository's git_objects
// table.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at cfg.Path. It does not
// run schema initialization or migration — call Init for that, which
// is split out so callers can observe (and log) the detected schema
// version before committing to it.
func Open(cfg Config) (*Store, error) {
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=%d&_foreign_keys=on&_synchronous=NORMAL",
		cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single writer per repository instance (spec.md §5): one
	// connection avoids SQLite's own lock contention entirely.
	db.SetMaxOpenConns(1)

	return &Store{db: db}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// WithTx runs fn inside a transaction, rolling back on any error fn
// returns.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func logf(format string, args ...any) {
	log.Debugf("[store] "+format, args...)
}
