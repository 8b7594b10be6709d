package mocks

import (
	"context"

	"github.com/akarpov/feedpulse/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of app.Repository.
type MockRepository struct {
	mock.Mock
}

// FetchUsers mocks the FetchUsers method.
func (m *MockRepository) FetchUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*domain.User), args.Error(1)
}

// FetchUserPosts mocks the FetchUserPosts method.
func (m *MockRepository) FetchUserPosts(ctx context.Context, userID int) ([]*domain.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*domain.Post), args.Error(1)
}

// FetchPostComments mocks the FetchPostComments method.
func (m *MockRepository) FetchPostComments(ctx context.Context, postID int) ([]*domain.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*domain.Comment), args.Error(1)
}
