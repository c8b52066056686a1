package service

import (
	"context"

	"shapeme/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockMediaService is a mock implementation of service.MediaService.
type MockMediaService struct {
	mock.Mock
}

// NewMockMediaService creates a new mock and registers cleanup assertions.
func NewMockMediaService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMediaService {
	m := &MockMediaService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMediaService) UploadImage(ctx context.Context, content []byte, filename string) (*service.UploadResult, error) {
	args := m.Called(ctx, content, filename)
	if result, ok := args.Get(0).(*service.UploadResult); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMediaService) DisplayURL(publicID string, size service.ImageSize) (string, error) {
	args := m.Called(publicID, size)

	return args.String(0), args.Error(1)
}

var _ service.MediaService = (*MockMediaService)(nil)
