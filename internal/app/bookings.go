package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"cinebook/api"
	"cinebook/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userID := app.contextGetUserId(r)

	booking := domain.Booking{
		Reference: uuid.New().String(),
		UserID:    userID,
		ShowID:    input.ShowId,
		Status:    domain.BookingStatusConfirmed,
	}

	err = app.bookingRepo.Create(r.Context(), &booking, input.SeatIds)
	if err != nil {
		var seatConflict domain.SeatConflictError

		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("booking attempt for non-existent show", "show_id", input.ShowId)
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrSeatNotInShow):
			logger.Warn("booking attempt with seats from another show", "show_id", input.ShowId)
			app.badRequestResponse(w, r, err)
		case errors.As(err, &seatConflict):
			logger.Warn("booking conflict on seat", "show_id", input.ShowId, "seat_number", seatConflict.SeatNumber)
			app.conflictResponse(w, r, seatConflict)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("booking confirmed",
		"booking_id", booking.ID,
		"show_id", booking.ShowID,
		"seats", len(booking.SeatNumbers),
	)

	app.sendBookingConfirmation(r, booking)

	resp := toBookingResponse(booking)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) sendBookingConfirmation(r *http.Request, booking domain.Booking) {
	logger := app.contextGetLogger(r)

	user, err := app.userRepo.GetById(r.Context(), booking.UserID)
	if err != nil {
		logger.Error("failed to load user for booking confirmation mail", "error", err)
		return
	}

	detail, err := app.bookingRepo.GetByIdAndUserId(r.Context(), booking.ID, booking.UserID)
	if err != nil {
		logger.Error("failed to load booking detail for confirmation mail", "error", err)
		return
	}

	go func() {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic occurred during sending booking confirmation mail", "panic", err)
			}
		}()

		data := map[string]any{
			"username":    user.Username,
			"movieTitle":  detail.MovieTitle,
			"reference":   booking.Reference,
			"seats":       strings.Join(booking.SeatNumbers, ", "),
			"totalAmount": booking.TotalAmount.StringFixed(2),
		}

		err := app.mailer.Send(user.Email, "booking_confirmation.tmpl", data)
		if err != nil {
			logger.Error("failed to send booking confirmation email", "error", err)
		}
	}()
}

func (app *Application) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUserId(r)
	page, pageSize := app.readPaginationParams(r)

	pagination := domain.Pagination{
		Page:     page,
		PageSize: pageSize,
	}

	bookings, metadata, err := app.bookingRepo.GetSummariesByUserId(r.Context(), userID, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Bookings: toBookingSummaries(bookings),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserBooking(w http.ResponseWriter, r *http.Request) {
	userID := app.contextGetUserId(r)

	bookingID, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.bookingRepo.GetByIdAndUserId(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.BookingDetailResponse{
		BookingSummary: toBookingSummary(detail.BookingSummary),
		Seats:          detail.SeatNumbers,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CancelBooking releases the booking's seats and marks it cancelled.
// Cancellation is only allowed for the owning user and before the show
// starts.
func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	userID := app.contextGetUserId(r)

	bookingID, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.bookingRepo.Cancel(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrBookingAlreadyCancelled):
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrShowAlreadyStarted):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("booking cancelled, seats released", "booking_id", bookingID)

	w.WriteHeader(http.StatusNoContent)
}

func toBookingResponse(booking domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:          booking.ID,
		Reference:   booking.Reference,
		ShowId:      booking.ShowID,
		Status:      string(booking.Status),
		TotalAmount: booking.TotalAmount,
		Seats:       booking.SeatNumbers,
		CreatedAt:   booking.CreatedAt,
	}
}

func toBookingSummary(summary domain.BookingSummary) api.BookingSummary {
	return api.BookingSummary{
		Id:           summary.BookingID,
		Reference:    summary.Reference,
		MovieTitle:   summary.MovieTitle,
		ShowTime:     summary.ShowTime,
		ScreenNumber: summary.ScreenNumber,
		Status:       string(summary.Status),
		TotalAmount:  summary.TotalAmount,
		CreatedAt:    summary.CreatedAt,
	}
}

func toBookingSummaries(summaries []domain.BookingSummary) []api.BookingSummary {
	responses := make([]api.BookingSummary, len(summaries))

	for i, summary := range summaries {
		responses[i] = toBookingSummary(summary)
	}

	return responses
}
