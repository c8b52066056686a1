package repository

import (
	"context"
	"errors"

	"shapeme/internal/domain/entity"
)

// ErrCategoryNotFound is a domain-specific error returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// List returns a page of categories ordered by ID.
	List(ctx context.Context, offset, limit int) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by ID. Referential integrity against
	// recipes is enforced by the usecase layer before calling this.
	Delete(ctx context.Context, id int64) error

	// DeleteAll removes every category and returns the number removed.
	DeleteAll(ctx context.Context) (int64, error)

	// Count returns the total number of categories.
	Count(ctx context.Context) (int64, error)
}
