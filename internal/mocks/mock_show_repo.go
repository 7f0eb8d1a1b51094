package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockShowRepo struct {
	CreateFunc             func(ctx context.Context, show *domain.Show) error
	GetByIdFunc            func(ctx context.Context, id int) (*domain.Show, error)
	GetUpcomingByMovieFunc func(ctx context.Context, movieID int) ([]domain.Show, error)
}

func (m *MockShowRepo) Create(ctx context.Context, show *domain.Show) error {
	return m.CreateFunc(ctx, show)
}

func (m *MockShowRepo) GetById(ctx context.Context, id int) (*domain.Show, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowRepo) GetUpcomingByMovie(ctx context.Context, movieID int) ([]domain.Show, error) {
	return m.GetUpcomingByMovieFunc(ctx, movieID)
}
