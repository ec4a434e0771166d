package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// DefaultPassphrase is seeded by Initialize on a fresh vault. It is public
// knowledge; operators are expected to disable seeding or use a fresh vault
// with Setup instead.
const DefaultPassphrase = "admin123"

// AuthService manages the master passphrase lifecycle: first-run seeding,
// one-time setup and login checks.
type AuthService struct {
	passphrases driven.PassphraseStore
	gate        *Gate
	logger      *slog.Logger
}

// NewAuthService creates a new AuthService with the required dependencies.
func NewAuthService(passphrases driven.PassphraseStore, gate *Gate, logger *slog.Logger) *AuthService {
	return &AuthService{
		passphrases: passphrases,
		gate:        gate,
		logger:      logger,
	}
}

// Initialize seeds the default passphrase digest and default categories if
// no passphrase record exists. Safe to call on every start.
func (s *AuthService) Initialize(ctx context.Context) error {
	seeded, err := s.passphrases.InitializeIfAbsent(ctx, DigestPassphrase(DefaultPassphrase), model.DefaultCategories)
	if err != nil {
		return fmt.Errorf("initialize vault: %w", err)
	}
	if seeded {
		s.logger.Warn("vault seeded with default master password and categories",
			"categories", len(model.DefaultCategories),
		)
	}
	return nil
}

// Setup stores the digest of candidate as the master passphrase. Returns
// driven.ErrPassphraseAlreadySet if one is already stored.
func (s *AuthService) Setup(ctx context.Context, candidate string) error {
	if err := s.passphrases.Set(ctx, DigestPassphrase(candidate)); err != nil {
		return err
	}
	s.logger.Info("master password set")
	return nil
}

// Login returns nil if candidate matches the stored passphrase and
// ErrUnauthorized otherwise.
func (s *AuthService) Login(ctx context.Context, candidate string) error {
	return s.gate.Authorize(ctx, candidate)
}
