package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockSeatRepo struct {
	EnsureProvisionedFunc func(ctx context.Context, showID int) ([]domain.Seat, error)
	GetByShowFunc         func(ctx context.Context, showID int) ([]domain.Seat, error)
}

func (m *MockSeatRepo) EnsureProvisioned(ctx context.Context, showID int) ([]domain.Seat, error) {
	return m.EnsureProvisionedFunc(ctx, showID)
}

func (m *MockSeatRepo) GetByShow(ctx context.Context, showID int) ([]domain.Seat, error) {
	return m.GetByShowFunc(ctx, showID)
}
