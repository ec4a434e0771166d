package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PassphraseStore = (*PassphraseRepo)(nil)

// passphraseRowID is the fixed primary key of the singleton passphrase row.
// The schema rejects any other id with a CHECK constraint.
const passphraseRowID = 1

// PassphraseRepo is the SQLite implementation of the PassphraseStore port interface.
type PassphraseRepo struct {
	db *DB
}

// NewPassphraseRepo creates a new PassphraseRepo backed by the given DB.
func NewPassphraseRepo(db *DB) *PassphraseRepo {
	return &PassphraseRepo{db: db}
}

// InitializeIfAbsent seeds defaultHash and categories inside one transaction.
// Categories are inserted only when the passphrase insert actually created the
// row, so repeated calls never duplicate the seed data.
func (r *PassphraseRepo) InitializeIfAbsent(ctx context.Context, defaultHash string, categories []string) (bool, error) {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin initialize tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted, err := insertPassphrase(ctx, tx, defaultHash)
	if err != nil {
		return false, fmt.Errorf("seed passphrase: %w", err)
	}
	if !inserted {
		return false, nil
	}

	const categoryQuery = `INSERT INTO categories (name) VALUES (?)`
	for _, name := range categories {
		if _, err := tx.ExecContext(ctx, categoryQuery, name); err != nil {
			return false, fmt.Errorf("seed category %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit initialize tx: %w", err)
	}

	return true, nil
}

// Set inserts hash as the singleton record. Returns ErrPassphraseAlreadySet
// when the row already exists.
func (r *PassphraseRepo) Set(ctx context.Context, hash string) error {
	inserted, err := insertPassphrase(ctx, r.db.Writer, hash)
	if err != nil {
		return fmt.Errorf("set passphrase: %w", err)
	}
	if !inserted {
		return fmt.Errorf("set passphrase: %w", driven.ErrPassphraseAlreadySet)
	}
	return nil
}

// Hash returns the stored digest, or ok=false when no record exists.
func (r *PassphraseRepo) Hash(ctx context.Context) (string, bool, error) {
	const query = `SELECT hash FROM master_passphrase WHERE id = ?`

	var hash string
	err := r.db.Reader.QueryRowContext(ctx, query, passphraseRowID).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get passphrase hash: %w", err)
	}

	return hash, true, nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// insertPassphrase performs the conditional insert and reports whether a row was written.
func insertPassphrase(ctx context.Context, e execer, hash string) (bool, error) {
	const query = `INSERT INTO master_passphrase (id, hash) VALUES (?, ?) ON CONFLICT(id) DO NOTHING`

	result, err := e.ExecContext(ctx, query, passphraseRowID, hash)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check rows affected: %w", err)
	}

	return rows == 1, nil
}
