// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"
	"errors"
)

// ErrPassphraseAlreadySet indicates a master passphrase record already exists.
var ErrPassphraseAlreadySet = errors.New("master passphrase already set")

// PassphraseStore defines the driven port for the singleton master passphrase
// record. The store holds digests only and never sees the passphrase itself.
type PassphraseStore interface {
	// InitializeIfAbsent atomically seeds defaultHash and the given categories
	// when no passphrase record exists. It reports whether seeding happened.
	// Calling it again once a record exists is a no-op.
	InitializeIfAbsent(ctx context.Context, defaultHash string, categories []string) (bool, error)

	// Set persists hash as the sole record in a single conditional insert.
	// Returns ErrPassphraseAlreadySet if a record already exists.
	Set(ctx context.Context, hash string) error

	// Hash returns the stored digest. ok is false when no record exists.
	Hash(ctx context.Context) (hash string, ok bool, err error)
}
