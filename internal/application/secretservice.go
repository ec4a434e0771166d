package application

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// NewSecret carries the caller-supplied fields of a secret to be created.
type NewSecret struct {
	Name       string
	Email      string
	URL        *string
	CategoryID *int64
	Password   string
}

// SecretService exposes passphrase-gated secret operations.
type SecretService struct {
	gate    *Gate
	secrets driven.SecretStore
	logger  *slog.Logger
}

// NewSecretService creates a new SecretService.
func NewSecretService(gate *Gate, secrets driven.SecretStore, logger *slog.Logger) *SecretService {
	return &SecretService{gate: gate, secrets: secrets, logger: logger}
}

// Create stores a new secret. CategoryID is not checked against existing
// categories; a dangling id lists with a nil category name.
func (s *SecretService) Create(ctx context.Context, in NewSecret, passphrase string) (model.Secret, error) {
	if err := s.gate.Authorize(ctx, passphrase); err != nil {
		return model.Secret{}, err
	}

	return s.secrets.Create(ctx, model.Secret{
		Name:       in.Name,
		Email:      in.Email,
		URL:        in.URL,
		CategoryID: in.CategoryID,
		Password:   in.Password,
	})
}

// List returns every secret joined with its category name.
func (s *SecretService) List(ctx context.Context, passphrase string) ([]model.SecretView, error) {
	if err := s.gate.Authorize(ctx, passphrase); err != nil {
		return nil, err
	}
	return s.secrets.ListAll(ctx)
}

// Delete removes the secret with the given id. Deleting an id that does not
// exist succeeds.
func (s *SecretService) Delete(ctx context.Context, id int64, passphrase string) error {
	if err := s.gate.Authorize(ctx, passphrase); err != nil {
		return err
	}

	existed, err := s.secrets.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		s.logger.Debug("delete of unknown secret id", "id", id)
	}
	return nil
}
