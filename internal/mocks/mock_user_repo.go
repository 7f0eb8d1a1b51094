package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockUserRepo struct {
	CreateFunc        func(ctx context.Context, user *domain.User) error
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	GetByIdFunc       func(ctx context.Context, id int) (*domain.User, error)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}

func (m *MockUserRepo) GetById(ctx context.Context, id int) (*domain.User, error) {
	return m.GetByIdFunc(ctx, id)
}
