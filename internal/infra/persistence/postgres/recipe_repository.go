package postgres

import (
	"context"

	"shapeme/internal/domain/entity"
	domainerrors "shapeme/internal/domain/errors"
	"shapeme/internal/domain/repository"
	"shapeme/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// FindByID retrieves a single recipe by its unique ID.
func (repo *recipeRepository) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	if err := repo.db.WithContext(ctx).First(&recipeM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRecipeDomain(&recipeM), nil
}

// List returns a page of recipes ordered by ID, applying the filter.
func (repo *recipeRepository) List(ctx context.Context, offset, limit int, filter repository.RecipeFilter) ([]*entity.Recipe, error) {
	query := repo.applyFilter(repo.db.WithContext(ctx), filter)

	var recipeModels []*model.RecipeModel
	err := query.
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&recipeModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// ListByCategory returns every recipe belonging to the given category.
func (repo *recipeRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel
	err := repo.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&recipeModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// Create persists a new recipe record.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt

	return nil
}

// Update modifies an existing recipe record.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	result := repo.db.WithContext(ctx).Model(&model.RecipeModel{}).
		Where("id = ?", recipeM.ID).
		Updates(map[string]any{
			"title_pt":          recipeM.TitlePT,
			"title_en":          recipeM.TitleEN,
			"title_es":          recipeM.TitleES,
			"description_pt":    recipeM.DescriptionPT,
			"description_en":    recipeM.DescriptionEN,
			"description_es":    recipeM.DescriptionES,
			"image_url":         recipeM.ImageURL,
			"difficulty":        recipeM.Difficulty,
			"prep_time_minutes": recipeM.PrepTimeMinutes,
			"category_id":       recipeM.CategoryID,
		})
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update recipe")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// Delete removes a recipe by ID.
func (repo *recipeRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.RecipeModel{}, id)
	if err := result.Error; err != nil {
		return errors.WithStack(err)
	}

	// If no rows were affected, it means the recipe was not found.
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// DeleteAll removes every recipe and returns the number removed.
func (repo *recipeRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.RecipeModel{})
	if err := result.Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return result.RowsAffected, nil
}

// Count returns the total number of recipes.
func (repo *recipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RecipeModel{}).Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// CountByCategory returns the number of recipes referencing a category.
func (repo *recipeRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.RecipeModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// applyFilter narrows a recipe query by category and by a case-insensitive
// substring search over the three localized titles.
func (repo *recipeRepository) applyFilter(query *gorm.DB, filter repository.RecipeFilter) *gorm.DB {
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title_pt ILIKE ? OR title_en ILIKE ? OR title_es ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	return query
}

// --- Mapper Functions ---

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:              data.ID,
		TitlePT:         data.TitlePT,
		TitleEN:         data.TitleEN,
		TitleES:         data.TitleES,
		DescriptionPT:   data.DescriptionPT,
		DescriptionEN:   data.DescriptionEN,
		DescriptionES:   data.DescriptionES,
		ImageURL:        data.ImageURL,
		Difficulty:      data.Difficulty,
		PrepTimeMinutes: data.PrepTimeMinutes,
		CategoryID:      data.CategoryID,
		CreatedAt:       data.CreatedAt,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:              data.ID,
		TitlePT:         data.TitlePT,
		TitleEN:         data.TitleEN,
		TitleES:         data.TitleES,
		DescriptionPT:   data.DescriptionPT,
		DescriptionEN:   data.DescriptionEN,
		DescriptionES:   data.DescriptionES,
		ImageURL:        data.ImageURL,
		Difficulty:      data.Difficulty,
		PrepTimeMinutes: data.PrepTimeMinutes,
		CategoryID:      data.CategoryID,
	}
}
