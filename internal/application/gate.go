// Package application holds the vault's use cases. Every category and secret
// operation passes through the Gate before touching a store.
package application

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// ErrUnauthorized is returned when a candidate passphrase does not match the
// stored digest, or when no digest is stored at all.
var ErrUnauthorized = errors.New("invalid master password")

// DigestPassphrase returns the hex-encoded SHA-256 digest of the UTF-8 bytes of p.
func DigestPassphrase(p string) string {
	sum := sha256.Sum256([]byte(p))
	return hex.EncodeToString(sum[:])
}

// Gate authorizes gated operations against the master passphrase record.
type Gate struct {
	passphrases driven.PassphraseStore
}

// NewGate creates a Gate backed by the given passphrase store.
func NewGate(passphrases driven.PassphraseStore) *Gate {
	return &Gate{passphrases: passphrases}
}

// Verify reports whether candidate matches the stored digest. A missing record
// yields false, not an error. Store failures are returned as errors.
func (g *Gate) Verify(ctx context.Context, candidate string) (bool, error) {
	stored, ok, err := g.passphrases.Hash(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	digest := DigestPassphrase(candidate)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(stored)) == 1, nil
}

// Authorize returns nil when candidate is valid and ErrUnauthorized otherwise.
func (g *Gate) Authorize(ctx context.Context, candidate string) error {
	ok, err := g.Verify(ctx, candidate)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}
