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

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager    repository.TransactionManager
	recipeRepo   repository.RecipeRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	RecipeRepo   repository.RecipeRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:    params.TxManager,
		recipeRepo:   params.RecipeRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new recipe after checking difficulty bounds and that the
// target category exists.
func (srv *recipeService) Create(ctx context.Context, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	if input.TitlePT == "" || input.TitleEN == "" || input.TitleES == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("all three localized titles are required")
	}
	if input.DescriptionPT == "" || input.DescriptionEN == "" || input.DescriptionES == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("all three localized descriptions are required")
	}

	recipe := &entity.Recipe{
		TitlePT:         input.TitlePT,
		TitleEN:         input.TitleEN,
		TitleES:         input.TitleES,
		DescriptionPT:   input.DescriptionPT,
		DescriptionEN:   input.DescriptionEN,
		DescriptionES:   input.DescriptionES,
		ImageURL:        input.ImageURL,
		Difficulty:      input.Difficulty,
		PrepTimeMinutes: input.PrepTimeMinutes,
		CategoryID:      input.CategoryID,
	}
	if !recipe.DifficultyInRange() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("difficulty out of range")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		recipeRepo := repoFactory.RecipeRepo()

		// A recipe pointing at a missing category is a bad request, not a 404:
		// the recipe is the resource here, the category id is just input.
		if _, err := categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrValidationFailed.WrapMessage("category does not exist")
			}

			return errors.Wrap(err, "failed to check category for recipe")
		}

		if err := recipeRepo.Create(ctx, recipe); err != nil {
			return errors.Wrap(err, "failed to create recipe")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute recipe creation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute recipe creation transaction")
	}
	srv.log(ctx).Debug("Recipe created", slog.Int64("recipeID", recipe.ID))

	return recipe, nil
}

// GetByID loads a single recipe.
func (srv *recipeService) GetByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WrapMessage("failed to load recipe")
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return recipe, nil
}

// List returns a page of recipes ordered by ID, applying the filters.
func (srv *recipeService) List(ctx context.Context, input *usecase.ListRecipesInput) (*usecase.ListRecipesOutput, error) {
	skip, limit := clampPage(input.Skip, input.Limit)
	filter := repository.RecipeFilter{
		CategoryID: input.CategoryID,
		Search:     input.Search,
	}

	var recipes []*entity.Recipe
	var total int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		var listErr error
		recipes, listErr = recipeRepo.List(ctx, skip, limit, filter)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to list recipes")
		}

		total, listErr = recipeRepo.Count(ctx)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to count recipes")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute recipe listing transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute recipe listing transaction")
	}

	return &usecase.ListRecipesOutput{
		Recipes:    recipes,
		Total:      total,
		Skip:       skip,
		Limit:      limit,
		CategoryID: input.CategoryID,
		Search:     input.Search,
	}, nil
}

// ListByCategory returns every recipe of one category. An unknown category
// is reported as not found rather than as an empty list.
func (srv *recipeService) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Recipe, error) {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("failed to list recipes by category")
		}

		return nil, errors.Wrap(err, "failed to check category")
	}

	recipes, err := srv.recipeRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		srv.log(ctx).Error("Failed to list recipes by category", slog.Int64("categoryID", categoryID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recipes by category")
	}

	return recipes, nil
}

// Update applies partial changes to an existing recipe.
func (srv *recipeService) Update(ctx context.Context, id int64, input *usecase.UpdateRecipeInput) (*entity.Recipe, error) {
	var updated *entity.Recipe
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()
		categoryRepo := repoFactory.CategoryRepo()

		recipe, err := recipeRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return domainerrors.ErrRecipeNotFound.WrapMessage("failed to update recipe")
			}

			return errors.Wrap(err, "failed to load recipe for update")
		}

		applyRecipeChanges(recipe, input)

		if !recipe.DifficultyInRange() {
			return domainerrors.ErrValidationFailed.WrapMessage("difficulty out of range")
		}

		// Re-check the category reference when it changes.
		if input.CategoryID != nil {
			if _, err := categoryRepo.FindByID(ctx, recipe.CategoryID); err != nil {
				if errors.Is(err, repository.ErrCategoryNotFound) {
					return domainerrors.ErrValidationFailed.WrapMessage("category does not exist")
				}

				return errors.Wrap(err, "failed to check category for recipe update")
			}
		}

		if err := recipeRepo.Update(ctx, recipe); err != nil {
			return errors.Wrap(err, "failed to update recipe")
		}
		updated = recipe

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute recipe update transaction", slog.Int64("recipeID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute recipe update transaction")
	}
	srv.log(ctx).Debug("Recipe updated", slog.Int64("recipeID", id))

	return updated, nil
}

// Delete removes a recipe.
func (srv *recipeService) Delete(ctx context.Context, id int64) error {
	if err := srv.recipeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return domainerrors.ErrRecipeNotFound.WrapMessage("failed to delete recipe")
		}
		srv.log(ctx).Error("Failed to delete recipe", slog.Int64("recipeID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete recipe")
	}
	srv.log(ctx).Debug("Recipe deleted", slog.Int64("recipeID", id))

	return nil
}

// applyRecipeChanges copies the non-nil input fields onto the recipe.
func applyRecipeChanges(recipe *entity.Recipe, input *usecase.UpdateRecipeInput) {
	if input.TitlePT != nil {
		recipe.TitlePT = *input.TitlePT
	}
	if input.TitleEN != nil {
		recipe.TitleEN = *input.TitleEN
	}
	if input.TitleES != nil {
		recipe.TitleES = *input.TitleES
	}
	if input.DescriptionPT != nil {
		recipe.DescriptionPT = *input.DescriptionPT
	}
	if input.DescriptionEN != nil {
		recipe.DescriptionEN = *input.DescriptionEN
	}
	if input.DescriptionES != nil {
		recipe.DescriptionES = *input.DescriptionES
	}
	if input.ImageURL != nil {
		recipe.ImageURL = *input.ImageURL
	}
	if input.Difficulty != nil {
		recipe.Difficulty = *input.Difficulty
	}
	if input.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = *input.PrepTimeMinutes
	}
	if input.CategoryID != nil {
		recipe.CategoryID = *input.CategoryID
	}
}
