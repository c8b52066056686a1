package repository

import (
	"context"

	"shapeme/internal/domain/entity"
	"shapeme/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a new mock and registers cleanup assertions.
func NewMockCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if category, ok := args.Get(0).(*entity.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, offset, limit int) ([]*entity.Category, error) {
	args := m.Called(ctx, offset, limit)
	if categories, ok := args.Get(0).([]*entity.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

var _ repository.CategoryRepository = (*MockCategoryRepository)(nil)
