package driven

import (
	"context"

	"github.com/ericfisherdev/passvault/internal/domain/model"
)

// SecretStore defines the driven port for credential persistence.
type SecretStore interface {
	// Create inserts a secret and returns the stored record with its assigned
	// ID. A zero CreatedAt is replaced with the current UTC time.
	Create(ctx context.Context, secret model.Secret) (model.Secret, error)

	// ListAll returns every secret joined with its category name, ordered by ID.
	ListAll(ctx context.Context) ([]model.SecretView, error)

	// Delete removes the secret with the given ID and reports whether a row
	// existed. A missing ID is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}
