package usecase

import (
	"context"

	"shapeme/internal/domain/entity"
)

// --- Output DTOs ---

// CategoryStats pairs a category with its recipe count.
type CategoryStats struct {
	Category     *entity.Category `json:"category"`
	RecipesCount int64            `json:"recipes_count"`
}

// StatsOutput summarizes the catalog for the admin dashboard.
type StatsOutput struct {
	TotalCategories int64            `json:"total_categories"`
	TotalRecipes    int64            `json:"total_recipes"`
	Categories      []*CategoryStats `json:"categories"`
}

// SeedOutput reports what the demo seed created.
type SeedOutput struct {
	CategoriesCreated int `json:"categories_created"`
	RecipesCreated    int `json:"recipes_created"`
}

// ResetOutput reports how many rows the catalog reset removed.
type ResetOutput struct {
	CategoriesDeleted int64 `json:"categories_deleted"`
	RecipesDeleted    int64 `json:"recipes_deleted"`
}

// AdminUsecase defines the maintenance operations behind the admin surface.
type AdminUsecase interface {
	// Stats computes catalog totals and per-category recipe counts.
	Stats(ctx context.Context) (*StatsOutput, error)

	// SeedData loads the demo catalog. Seeding a non-empty catalog is a no-op.
	SeedData(ctx context.Context) (*SeedOutput, error)

	// ResetData wipes the catalog, removing recipes before categories.
	ResetData(ctx context.Context) (*ResetOutput, error)
}
