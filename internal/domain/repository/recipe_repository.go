package repository

import (
	"context"
	"errors"

	"shapeme/internal/domain/entity"
)

// ErrRecipeNotFound is a domain-specific error returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeFilter narrows recipe listings. The search term is matched
// case-insensitively as a substring of any of the three localized titles.
type RecipeFilter struct {
	CategoryID *int64
	Search     string
}

// RecipeRepository defines the standard operations for recipe persistence.
type RecipeRepository interface {
	// FindByID retrieves a single recipe by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Recipe, error)

	// List returns a page of recipes ordered by ID, applying the filter.
	List(ctx context.Context, offset, limit int, filter RecipeFilter) ([]*entity.Recipe, error)

	// ListByCategory returns every recipe belonging to the given category.
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Recipe, error)

	// Create persists a new recipe.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update modifies an existing recipe.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// Delete removes a recipe by ID.
	Delete(ctx context.Context, id int64) error

	// DeleteAll removes every recipe and returns the number removed.
	DeleteAll(ctx context.Context) (int64, error)

	// Count returns the total number of recipes.
	Count(ctx context.Context) (int64, error)

	// CountByCategory returns the number of recipes referencing a category.
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}
