package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          int
	Reference   string
	UserID      int
	ShowID      int
	TotalAmount decimal.Decimal
	Status      BookingStatus
	SeatNumbers []string
	CreatedAt   time.Time
}

type BookingSummary struct {
	BookingID    int
	Reference    string
	MovieTitle   string
	ShowTime     time.Time
	ScreenNumber int
	TotalAmount  decimal.Decimal
	Status       BookingStatus
	CreatedAt    time.Time
}

type BookingDetail struct {
	BookingSummary
	SeatNumbers []string
}

type BookingRepository interface {
	// Create claims the requested seats for a new confirmed booking. The
	// check-and-claim sequence runs inside a single transaction with the
	// seat rows locked, so two overlapping attempts can never both succeed.
	// On success the booking's ID, total amount, seat numbers and creation
	// time are filled in.
	Create(ctx context.Context, booking *Booking, seatIDs []int) error
	GetByIdAndUserId(ctx context.Context, bookingID, userID int) (*BookingDetail, error)
	GetSummariesByUserId(ctx context.Context, userID int, pagination Pagination) ([]BookingSummary, *Metadata, error)
	// Cancel marks a booking cancelled and releases its seats. Only the
	// owning user may cancel, and only before the show starts.
	Cancel(ctx context.Context, bookingID, userID int) error
}
