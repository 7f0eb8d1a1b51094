// Package api holds the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AlreadyLoggedInResponse struct {
	Message string `json:"message"`
}

type CreateMovieRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	Genre       string `json:"genre"`
	Rating      string `json:"rating"`
	PosterUrl   string `json:"posterUrl" validate:"omitempty,url"`
}

type MovieResponse struct {
	Id          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Genre       string    `json:"genre"`
	Rating      string    `json:"rating"`
	PosterUrl   string    `json:"posterUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MovieListResponse struct {
	Movies   []MovieResponse `json:"movies"`
	Metadata Metadata        `json:"metadata"`
}

type MovieDetailResponse struct {
	MovieResponse
	Shows []ShowResponse `json:"shows"`
}

type CreateShowRequest struct {
	ShowTime     time.Time       `json:"showTime" validate:"required"`
	ScreenNumber int             `json:"screenNumber" validate:"required,gt=0"`
	TotalSeats   int             `json:"totalSeats" validate:"required,gt=0"`
	Price        decimal.Decimal `json:"price" validate:"required"`
}

type ShowResponse struct {
	Id           int             `json:"id"`
	MovieId      int             `json:"movieId"`
	ShowTime     time.Time       `json:"showTime"`
	ScreenNumber int             `json:"screenNumber"`
	TotalSeats   int             `json:"totalSeats"`
	Price        decimal.Decimal `json:"price"`
}

type Seat struct {
	Id         int    `json:"id"`
	SeatNumber string `json:"seatNumber"`
	Row        string `json:"row"`
	Column     int    `json:"column"`
	Available  bool   `json:"available"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	ShowId             int       `json:"showId"`
	AvailableCount     int       `json:"availableCount"`
	UnavailableSeatIds []int     `json:"unavailableSeatIds"`
	SeatRows           []SeatRow `json:"seatRows"`
}

type CreateBookingRequest struct {
	ShowId  int   `json:"showId" validate:"required,gt=0"`
	SeatIds []int `json:"seatIds" validate:"required,min=1,dive,gt=0"`
}

type BookingResponse struct {
	Id          int             `json:"id"`
	Reference   string          `json:"reference"`
	ShowId      int             `json:"showId"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Seats       []string        `json:"seats"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type BookingSummary struct {
	Id           int             `json:"id"`
	Reference    string          `json:"reference"`
	MovieTitle   string          `json:"movieTitle"`
	ShowTime     time.Time       `json:"showTime"`
	ScreenNumber int             `json:"screenNumber"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings []BookingSummary `json:"bookings"`
	Metadata Metadata         `json:"metadata"`
}

type BookingDetailResponse struct {
	BookingSummary
	Seats []string `json:"seats"`
}
