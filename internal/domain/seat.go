package domain

import (
	"context"
	"fmt"
)

type Seat struct {
	ID         int
	ShowID     int
	SeatNumber string
	Row        string
	Col        int
	BookingID  *int
	Available  bool
}

type SeatPosition struct {
	SeatNumber string
	Row        string
	Col        int
}

// seatRows is the fixed auditorium layout: every show gets the same five
// rows, with the show's capacity divided evenly across them.
var seatRows = []string{"A", "B", "C", "D", "E"}

// NewSeatGrid lays out the seat positions for a show of the given capacity.
// Seats per row is capacity / 5, so a capacity that doesn't divide evenly
// loses the remainder. Columns are numbered from 1 and labels are row+column
// ("A1", "B5").
func NewSeatGrid(totalSeats int) []SeatPosition {
	perRow := totalSeats / len(seatRows)

	positions := make([]SeatPosition, 0, perRow*len(seatRows))

	for _, row := range seatRows {
		for col := 1; col <= perRow; col++ {
			positions = append(positions, SeatPosition{
				SeatNumber: fmt.Sprintf("%s%d", row, col),
				Row:        row,
				Col:        col,
			})
		}
	}

	return positions
}

type SeatRepository interface {
	// EnsureProvisioned materializes the seat grid for a show on first
	// access and returns the full seat set. It must be idempotent and safe
	// to call from concurrent requests.
	EnsureProvisioned(ctx context.Context, showID int) ([]Seat, error)
	GetByShow(ctx context.Context, showID int) ([]Seat, error)
}
