package mocks

import (
	"context"

	"cinebook/internal/domain"
)

type MockBookingRepo struct {
	CreateFunc               func(ctx context.Context, booking *domain.Booking, seatIDs []int) error
	GetByIdAndUserIdFunc     func(ctx context.Context, bookingID, userID int) (*domain.BookingDetail, error)
	GetSummariesByUserIdFunc func(ctx context.Context, userID int, pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error)
	CancelFunc               func(ctx context.Context, bookingID, userID int) error
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking, seatIDs []int) error {
	return m.CreateFunc(ctx, booking, seatIDs)
}

func (m *MockBookingRepo) GetByIdAndUserId(
	ctx context.Context,
	bookingID,
	userID int) (*domain.BookingDetail, error) {

	return m.GetByIdAndUserIdFunc(ctx, bookingID, userID)
}

func (m *MockBookingRepo) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	return m.GetSummariesByUserIdFunc(ctx, userID, pagination)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, bookingID, userID int) error {
	return m.CancelFunc(ctx, bookingID, userID)
}
