// Package sqlite implements the driven vault ports on top of a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Register the pure-Go sqlite driver
)

const (
	vaultPragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)"

	writerConns = 1
	readerConns = 4
)

// DB holds two pools over the same vault file. Writer has exactly one
// connection, so every insert and delete is serialized and the singleton
// passphrase insert cannot race. Reader serves gate checks and listings.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
	path   string
}

// NewDB opens the vault file at dbPath, creating it when missing. Neither
// pool is returned until it has answered a ping.
func NewDB(ctx context.Context, dbPath string) (*DB, error) {
	dsn := "file:" + dbPath + "?" + vaultPragmas

	writer, err := openPool(ctx, dsn, writerConns)
	if err != nil {
		return nil, fmt.Errorf("writer pool: %w", err)
	}

	reader, err := openPool(ctx, dsn, readerConns)
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("reader pool: %w", err)
	}

	return &DB{Writer: writer, Reader: reader, path: dbPath}, nil
}

func openPool(ctx context.Context, dsn string, conns int) (*sql.DB, error) {
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	pool.SetMaxOpenConns(conns)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// Path reports the vault file location.
func (db *DB) Path() string {
	return db.path
}

// Close releases both pools, reader first.
func (db *DB) Close() error {
	return errors.Join(db.Reader.Close(), db.Writer.Close())
}
