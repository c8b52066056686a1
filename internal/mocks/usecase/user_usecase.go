// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"shapeme/internal/domain/entity"
	"shapeme/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock implementation of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a new mock and registers cleanup assertions.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) RegisterAdmin(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) ProvisionFromPurchase(ctx context.Context, input *usecase.PurchaseInput) (*usecase.PurchaseOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.PurchaseOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

var _ usecase.UserUsecase = (*MockUserUsecase)(nil)
