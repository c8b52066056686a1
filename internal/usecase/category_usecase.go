package usecase

import (
	"context"

	"shapeme/internal/domain/entity"
)

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a category.
// All three localized names are mandatory.
type CreateCategoryInput struct {
	NamePT string
	NameEN string
	NameES string
}

// UpdateCategoryInput carries the new localized names for a category.
type UpdateCategoryInput struct {
	NamePT string
	NameEN string
	NameES string
}

// ListCategoriesInput selects a page of categories.
type ListCategoriesInput struct {
	Skip  int
	Limit int
}

// --- Output DTOs ---

// ListCategoriesOutput returns one page of categories plus paging metadata.
type ListCategoriesOutput struct {
	Categories []*entity.Category
	Total      int64
	Skip       int
	Limit      int
}

// CategoryUsecase defines the interface for category catalog operations.
type CategoryUsecase interface {
	// Create adds a new category.
	Create(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// GetByID loads a single category.
	GetByID(ctx context.Context, id int64) (*entity.Category, error)

	// List returns a page of categories ordered by ID.
	List(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error)

	// Update replaces the localized names of an existing category.
	Update(ctx context.Context, id int64, input *UpdateCategoryInput) (*entity.Category, error)

	// Delete removes a category. A category still referenced by recipes
	// cannot be deleted.
	Delete(ctx context.Context, id int64) error
}
