package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shapeme/internal/domain/entity"
	mockRepo "shapeme/internal/mocks/repository"
	"shapeme/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	recipeRepo   *mockRepo.MockRecipeRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			CategoryRepository: categoryRepo,
			RecipeRepository:   recipeRepo,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(AdminServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})

	return adminServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
		recipeRepo:   recipeRepo,
	}
}

func TestAdminService_Stats(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	categories := []*entity.Category{
		{ID: 1, NameEN: "Salads"},
		{ID: 2, NameEN: "Smoothies"},
	}

	fx.categoryRepo.On("Count", ctx).Return(int64(2), nil)
	fx.recipeRepo.On("Count", ctx).Return(int64(7), nil)
	fx.categoryRepo.On("List", ctx, 0, 2).Return(categories, nil)
	fx.recipeRepo.On("CountByCategory", ctx, int64(1)).Return(int64(4), nil)
	fx.recipeRepo.On("CountByCategory", ctx, int64(2)).Return(int64(3), nil)

	output, err := fx.service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), output.TotalCategories)
	assert.Equal(t, int64(7), output.TotalRecipes)
	require.Len(t, output.Categories, 2)
	assert.Equal(t, int64(4), output.Categories[0].RecipesCount)
	assert.Equal(t, "Smoothies", output.Categories[1].Category.NameEN)
}

func TestAdminService_SeedData_EmptyCatalog(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.categoryRepo.On("Count", ctx).Return(int64(0), nil)
	fx.categoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(args mock.Arguments) {
			category := args.Get(1).(*entity.Category)
			category.ID = int64(len(category.NamePT)) // any non-zero id
		}).
		Return(nil).
		Times(5)
	fx.recipeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Recipe")).Return(nil).Times(5)

	output, err := fx.service.SeedData(ctx)

	require.NoError(t, err)
	assert.Equal(t, 5, output.CategoriesCreated)
	assert.Equal(t, 5, output.RecipesCreated)
}

func TestAdminService_SeedData_AlreadySeeded(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.categoryRepo.On("Count", ctx).Return(int64(5), nil)

	output, err := fx.service.SeedData(ctx)

	// Seeding a non-empty catalog changes nothing.
	require.NoError(t, err)
	assert.Equal(t, 0, output.CategoriesCreated)
	assert.Equal(t, 0, output.RecipesCreated)
	fx.categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.recipeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminService_ResetData(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	var order []string
	fx.recipeRepo.On("DeleteAll", ctx).
		Run(func(mock.Arguments) { order = append(order, "recipes") }).
		Return(int64(5), nil)
	fx.categoryRepo.On("DeleteAll", ctx).
		Run(func(mock.Arguments) { order = append(order, "categories") }).
		Return(int64(3), nil)

	output, err := fx.service.ResetData(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(5), output.RecipesDeleted)
	assert.Equal(t, int64(3), output.CategoriesDeleted)
	// Recipes must go before categories because of the foreign key.
	assert.Equal(t, []string{"recipes", "categories"}, order)
}

func TestAdminService_SeedRecipes_DifficultiesWithinBounds(t *testing.T) {
	categories := seedCategories()
	for i, category := range categories {
		category.ID = int64(i + 1)
	}

	for _, recipe := range seedRecipes(categories) {
		assert.True(t, recipe.DifficultyInRange(), recipe.TitleEN)
		assert.NotZero(t, recipe.CategoryID)
	}
}
