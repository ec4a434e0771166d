package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CategoryStore = (*CategoryRepo)(nil)

// CategoryRepo is the SQLite implementation of the CategoryStore port interface.
type CategoryRepo struct {
	db *DB
}

// NewCategoryRepo creates a new CategoryRepo backed by the given DB.
func NewCategoryRepo(db *DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create inserts a new category and returns it with the assigned ID.
func (r *CategoryRepo) Create(ctx context.Context, name string) (model.Category, error) {
	const query = `INSERT INTO categories (name) VALUES (?)`

	result, err := r.db.Writer.ExecContext(ctx, query, name)
	if err != nil {
		return model.Category{}, fmt.Errorf("create category %q: %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Category{}, fmt.Errorf("get category id: %w", err)
	}

	return model.Category{ID: id, Name: name}, nil
}

// ListAll returns all categories ordered by ID, which is insertion order.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name FROM categories ORDER BY id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}
