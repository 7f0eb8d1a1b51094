package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockMovieRepo struct {
	CreateFunc  func(ctx context.Context, movie *domain.Movie) error
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, *domain.Metadata, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Movie, error)
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]*domain.Movie, *domain.Metadata, error) {

	return m.GetAllFunc(ctx, pagination)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
