package impl

import (
	"context"
	"log/slog"

	deliverycontext "shapeme/internal/delivery/context"
	"shapeme/internal/domain/entity"
	domainerrors "shapeme/internal/domain/errors"
	"shapeme/internal/domain/repository"
	"shapeme/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Paging bounds shared by the catalog listings. An omitted limit falls back
// to a full page of 100 rows, matching the upper clamp.
const (
	defaultPageLimit = 100
	maxPageLimit     = 100
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new category.
func (srv *categoryService) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	if input.NamePT == "" || input.NameEN == "" || input.NameES == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("all three localized names are required")
	}

	category := &entity.Category{
		NamePT: input.NamePT,
		NameEN: input.NameEN,
		NameES: input.NameES,
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}
	srv.log(ctx).Debug("Category created", slog.Int64("categoryID", category.ID))

	return category, nil
}

// GetByID loads a single category.
func (srv *categoryService) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("failed to load category")
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return category, nil
}

// List returns a page of categories ordered by ID.
func (srv *categoryService) List(ctx context.Context, input *usecase.ListCategoriesInput) (*usecase.ListCategoriesOutput, error) {
	skip, limit := clampPage(input.Skip, input.Limit)

	var categories []*entity.Category
	var total int64

	// One transaction keeps the page and the total consistent.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		var listErr error
		categories, listErr = categoryRepo.List(ctx, skip, limit)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to list categories")
		}

		total, listErr = categoryRepo.Count(ctx)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to count categories")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute category listing transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute category listing transaction")
	}

	return &usecase.ListCategoriesOutput{
		Categories: categories,
		Total:      total,
		Skip:       skip,
		Limit:      limit,
	}, nil
}

// Update replaces the localized names of an existing category.
func (srv *categoryService) Update(ctx context.Context, id int64, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	if input.NamePT == "" || input.NameEN == "" || input.NameES == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("all three localized names are required")
	}

	var updated *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("failed to update category")
			}

			return errors.Wrap(err, "failed to load category for update")
		}

		category.NamePT = input.NamePT
		category.NameEN = input.NameEN
		category.NameES = input.NameES

		if err := categoryRepo.Update(ctx, category); err != nil {
			return errors.Wrap(err, "failed to update category")
		}
		updated = category

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute category update transaction", slog.Int64("categoryID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute category update transaction")
	}
	srv.log(ctx).Debug("Category updated", slog.Int64("categoryID", id))

	return updated, nil
}

// Delete removes a category. The recipe count check and the delete run in
// one transaction so a concurrent recipe insert cannot slip between them.
func (srv *categoryService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		recipeRepo := repoFactory.RecipeRepo()

		if _, err := categoryRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("failed to delete category")
			}

			return errors.Wrap(err, "failed to load category for delete")
		}

		count, err := recipeRepo.CountByCategory(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count recipes for category")
		}
		if count > 0 {
			return domainerrors.ErrCategoryInUse.WrapMessage("failed to delete category")
		}

		if err := categoryRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute category delete transaction", slog.Int64("categoryID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute category delete transaction")
	}
	srv.log(ctx).Debug("Category deleted", slog.Int64("categoryID", id))

	return nil
}

// clampPage normalizes paging parameters into the allowed bounds.
func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return skip, limit
}
