package repository

import (
	"context"

	"shapeme/internal/domain/entity"
	"shapeme/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRecipeRepository is a mock implementation of repository.RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

// NewMockRecipeRepository creates a new mock and registers cleanup assertions.
func NewMockRecipeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecipeRepository {
	m := &MockRecipeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	args := m.Called(ctx, id)
	if recipe, ok := args.Get(0).(*entity.Recipe); ok {
		return recipe, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRecipeRepository) List(ctx context.Context, offset, limit int, filter repository.RecipeFilter) ([]*entity.Recipe, error) {
	args := m.Called(ctx, offset, limit, filter)
	if recipes, ok := args.Get(0).([]*entity.Recipe); ok {
		return recipes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRecipeRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Recipe, error) {
	args := m.Called(ctx, categoryID)
	if recipes, ok := args.Get(0).([]*entity.Recipe); ok {
		return recipes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	return m.Called(ctx, recipe).Error(0)
}

func (m *MockRecipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	return m.Called(ctx, recipe).Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecipeRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)

	return args.Get(0).(int64), args.Error(1)
}

var _ repository.RecipeRepository = (*MockRecipeRepository)(nil)
