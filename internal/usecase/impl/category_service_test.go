package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shapeme/internal/domain/entity"
	domainerrors "shapeme/internal/domain/errors"
	"shapeme/internal/domain/repository"
	mockRepo "shapeme/internal/mocks/repository"
	"shapeme/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	recipeRepo   *mockRepo.MockRecipeRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			CategoryRepository: categoryRepo,
			RecipeRepository:   recipeRepo,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Logger:       logger,
	})

	return categoryServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
		recipeRepo:   recipeRepo,
	}
}

func TestCategoryService_Create_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Category).ID = 1
		}).
		Return(nil)

	category, err := fx.service.Create(ctx, &usecase.CreateCategoryInput{
		NamePT: "Saladas",
		NameEN: "Salads",
		NameES: "Ensaladas",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), category.ID)
	assert.Equal(t, "Salads", category.NameEN)
}

func TestCategoryService_Create_MissingName(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category, err := fx.service.Create(ctx, &usecase.CreateCategoryInput{
		NamePT: "Saladas",
		NameEN: "Salads",
	})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_List_ClampsPaging(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	// Oversized limit is clamped to the maximum, negative skip to zero.
	fx.categoryRepo.On("List", ctx, 0, maxPageLimit).Return([]*entity.Category{}, nil)
	fx.categoryRepo.On("Count", ctx).Return(int64(0), nil)

	output, err := fx.service.List(ctx, &usecase.ListCategoriesInput{Skip: -5, Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, 0, output.Skip)
	assert.Equal(t, maxPageLimit, output.Limit)
}

func TestCategoryService_List_DefaultLimit(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	categories := []*entity.Category{{ID: 1}, {ID: 2}}
	fx.categoryRepo.On("List", ctx, 0, defaultPageLimit).Return(categories, nil)
	fx.categoryRepo.On("Count", ctx).Return(int64(2), nil)

	output, err := fx.service.List(ctx, &usecase.ListCategoriesInput{})

	require.NoError(t, err)
	assert.Len(t, output.Categories, 2)
	assert.Equal(t, int64(2), output.Total)
	assert.Equal(t, 100, output.Limit)
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrCategoryNotFound)

	category, err := fx.service.Update(ctx, 99, &usecase.UpdateCategoryInput{
		NamePT: "a", NameEN: "b", NameES: "c",
	})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Delete_WithoutRecipes(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.On("FindByID", ctx, int64(3)).Return(&entity.Category{ID: 3}, nil)
	fx.recipeRepo.On("CountByCategory", ctx, int64(3)).Return(int64(0), nil)
	fx.categoryRepo.On("Delete", ctx, int64(3)).Return(nil)

	err := fx.service.Delete(ctx, 3)

	require.NoError(t, err)
}

func TestCategoryService_Delete_StillReferenced(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.On("FindByID", ctx, int64(3)).Return(&entity.Category{ID: 3}, nil)
	fx.recipeRepo.On("CountByCategory", ctx, int64(3)).Return(int64(2), nil)

	err := fx.service.Delete(ctx, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
	fx.categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrCategoryNotFound)

	err := fx.service.Delete(ctx, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
