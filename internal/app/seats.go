package app

import (
	"errors"
	"net/http"

	"cinebook/api"
	"cinebook/internal/domain"
)

// GetShowSeatMap returns the seat layout for a show, provisioning the seat
// grid on first access. Seats claimed by a confirmed booking are flagged
// unavailable.
func (app *Application) GetShowSeatMap(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	showID, err := app.readIDParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seats, err := app.seatRepo.EnsureProvisioned(r.Context(), showID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("seat map requested for non-existent show", "show_id", showID)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toSeatMapResponse(showID, seats)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(showID int, seats []domain.Seat) api.SeatMapResponse {
	resp := api.SeatMapResponse{
		ShowId:             showID,
		UnavailableSeatIds: make([]int, 0),
		SeatRows:           toSeatRows(seats),
	}

	for _, seat := range seats {
		if seat.Available {
			resp.AvailableCount++
		} else {
			resp.UnavailableSeatIds = append(resp.UnavailableSeatIds, seat.ID)
		}
	}

	return resp
}

func toSeatRows(seats []domain.Seat) []api.SeatRow {
	// Seats are pre-sorted by row and column, so a single pass groups them.
	var seatRows []api.SeatRow

	for _, seat := range seats {
		apiSeat := api.Seat{
			Id:         seat.ID,
			SeatNumber: seat.SeatNumber,
			Row:        seat.Row,
			Column:     seat.Col,
			Available:  seat.Available,
		}

		if len(seatRows) == 0 || seatRows[len(seatRows)-1].Row != seat.Row {
			seatRows = append(seatRows, api.SeatRow{Row: seat.Row})
		}

		last := &seatRows[len(seatRows)-1]
		last.Seats = append(last.Seats, apiSeat)
	}

	return seatRows
}
