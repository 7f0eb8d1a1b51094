package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound          = errors.New("record not found")
	ErrUserAlreadyExists       = errors.New("user already exists")
	ErrEditConflict            = errors.New("edit conflict")
	ErrSeatNotInShow           = errors.New("one or more seats do not belong to the show")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrShowAlreadyStarted      = errors.New("show has already started")
)

// SeatConflictError reports the first requested seat that was no longer
// available at claim time, so the caller can re-select.
type SeatConflictError struct {
	SeatNumber string
}

func (e SeatConflictError) Error() string {
	return fmt.Sprintf("seat %s is already booked", e.SeatNumber)
}
