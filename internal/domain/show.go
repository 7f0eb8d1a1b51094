package domain

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Show struct {
	ID           int
	MovieID      int
	ShowTime     time.Time
	ScreenNumber int
	TotalSeats   int
	Price        pgtype.Numeric
	CreatedAt    time.Time
}

// PriceDecimal converts the scanned numeric ticket price into a decimal
// suitable for money arithmetic.
func (s Show) PriceDecimal() decimal.Decimal {
	return NumericToDecimal(s.Price)
}

func NumericToDecimal(numeric pgtype.Numeric) decimal.Decimal {
	if !numeric.Valid {
		return decimal.Zero
	}

	float64Value, err := numeric.Float64Value()
	if err != nil {
		return decimal.Zero
	}

	return decimal.NewFromFloat(float64Value.Float64)
}

type ShowRepository interface {
	Create(ctx context.Context, show *Show) error
	GetById(ctx context.Context, id int) (*Show, error)
	GetUpcomingByMovie(ctx context.Context, movieID int) ([]Show, error)
}
