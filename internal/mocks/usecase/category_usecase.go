package usecase

import (
	"context"

	"shapeme/internal/domain/entity"
	"shapeme/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockCategoryUsecase is a mock implementation of usecase.CategoryUsecase.
type MockCategoryUsecase struct {
	mock.Mock
}

// NewMockCategoryUsecase creates a new mock and registers cleanup assertions.
func NewMockCategoryUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryUsecase {
	m := &MockCategoryUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryUsecase) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, input)
	if category, ok := args.Get(0).(*entity.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryUsecase) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if category, ok := args.Get(0).(*entity.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryUsecase) List(ctx context.Context, input *usecase.ListCategoriesInput) (*usecase.ListCategoriesOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.ListCategoriesOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryUsecase) Update(ctx context.Context, id int64, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, id, input)
	if category, ok := args.Get(0).(*entity.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryUsecase) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ usecase.CategoryUsecase = (*MockCategoryUsecase)(nil)
