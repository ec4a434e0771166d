package driven

import (
	"context"

	"github.com/ericfisherdev/passvault/internal/domain/model"
)

// CategoryStore defines the driven port for category persistence.
type CategoryStore interface {
	// Create inserts a category and returns it with its assigned ID.
	Create(ctx context.Context, name string) (model.Category, error)
	// ListAll returns all categories in insertion order.
	ListAll(ctx context.Context) ([]model.Category, error)
}
