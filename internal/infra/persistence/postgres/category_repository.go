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

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindByID retrieves a single category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).First(&categoryM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCategoryDomain(&categoryM), nil
}

// List returns a page of categories ordered by ID.
func (repo *categoryRepository) List(ctx context.Context, offset, limit int) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	err := repo.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&categoryModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// Create persists a new category record.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required category name")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

// Update modifies an existing category record.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	result := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).
		Where("id = ?", categoryM.ID).
		Updates(map[string]any{
			"name_pt": categoryM.NamePT,
			"name_en": categoryM.NameEN,
			"name_es": categoryM.NameES,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category by ID.
func (repo *categoryRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CategoryModel{}, id)
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryInUse.WrapMessage("category still referenced by recipes")
		}

		return errors.WithStack(err)
	}

	// If no rows were affected, it means the category was not found.
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// DeleteAll removes every category and returns the number removed.
func (repo *categoryRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.CategoryModel{})
	if err := result.Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return result.RowsAffected, nil
}

// Count returns the total number of categories.
func (repo *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		NamePT:    data.NamePT,
		NameEN:    data.NameEN,
		NameES:    data.NameES,
		CreatedAt: data.CreatedAt,
	}
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:     data.ID,
		NamePT: data.NamePT,
		NameEN: data.NameEN,
		NameES: data.NameES,
	}
}
