package application

import (
	"context"

	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// CategoryService exposes passphrase-gated category operations.
type CategoryService struct {
	gate       *Gate
	categories driven.CategoryStore
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(gate *Gate, categories driven.CategoryStore) *CategoryService {
	return &CategoryService{gate: gate, categories: categories}
}

// Create adds a category named name. Empty names are accepted.
func (s *CategoryService) Create(ctx context.Context, name, passphrase string) (model.Category, error) {
	if err := s.gate.Authorize(ctx, passphrase); err != nil {
		return model.Category{}, err
	}
	return s.categories.Create(ctx, name)
}

// List returns all categories in insertion order.
func (s *CategoryService) List(ctx context.Context, passphrase string) ([]model.Category, error) {
	if err := s.gate.Authorize(ctx, passphrase); err != nil {
		return nil, err
	}
	return s.categories.ListAll(ctx)
}
