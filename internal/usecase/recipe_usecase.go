package usecase

import (
	"context"

	"shapeme/internal/domain/entity"
)

// --- Input DTOs ---

// CreateRecipeInput defines the data required to create a recipe.
type CreateRecipeInput struct {
	TitlePT         string
	TitleEN         string
	TitleES         string
	DescriptionPT   string
	DescriptionEN   string
	DescriptionES   string
	ImageURL        string
	Difficulty      int
	PrepTimeMinutes int
	CategoryID      int64
}

// UpdateRecipeInput carries partial recipe changes. Nil fields are left
// untouched.
type UpdateRecipeInput struct {
	TitlePT         *string
	TitleEN         *string
	TitleES         *string
	DescriptionPT   *string
	DescriptionEN   *string
	DescriptionES   *string
	ImageURL        *string
	Difficulty      *int
	PrepTimeMinutes *int
	CategoryID      *int64
}

// ListRecipesInput selects a page of recipes with optional filters.
type ListRecipesInput struct {
	Skip       int
	Limit      int
	CategoryID *int64
	Search     string
}

// --- Output DTOs ---

// ListRecipesOutput returns one page of recipes plus paging metadata and the
// filters that were applied.
type ListRecipesOutput struct {
	Recipes    []*entity.Recipe
	Total      int64
	Skip       int
	Limit      int
	CategoryID *int64
	Search     string
}

// RecipeUsecase defines the interface for recipe catalog operations.
type RecipeUsecase interface {
	// Create adds a new recipe after checking difficulty bounds and that
	// the target category exists.
	Create(ctx context.Context, input *CreateRecipeInput) (*entity.Recipe, error)

	// GetByID loads a single recipe.
	GetByID(ctx context.Context, id int64) (*entity.Recipe, error)

	// List returns a page of recipes ordered by ID, applying the filters.
	List(ctx context.Context, input *ListRecipesInput) (*ListRecipesOutput, error)

	// ListByCategory returns every recipe of one category.
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Recipe, error)

	// Update applies partial changes to an existing recipe.
	Update(ctx context.Context, id int64, input *UpdateRecipeInput) (*entity.Recipe, error)

	// Delete removes a recipe.
	Delete(ctx context.Context, id int64) error
}
