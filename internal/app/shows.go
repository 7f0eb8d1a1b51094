package app

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgtype"

	"cinebook/api"
	"cinebook/internal/domain"
)

func (app *Application) CreateShow(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	movieID, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.CreateShowRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	var price pgtype.Numeric

	err = price.Scan(input.Price.StringFixed(2))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	show := domain.Show{
		MovieID:      movieID,
		ShowTime:     input.ShowTime,
		ScreenNumber: input.ScreenNumber,
		TotalSeats:   input.TotalSeats,
		Price:        price,
	}

	err = app.showRepo.Create(r.Context(), &show)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("show creation attempt for non-existent movie", "movie_id", movieID)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toShowResponse(show)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowResponse(show domain.Show) api.ShowResponse {
	return api.ShowResponse{
		Id:           show.ID,
		MovieId:      show.MovieID,
		ShowTime:     show.ShowTime,
		ScreenNumber: show.ScreenNumber,
		TotalSeats:   show.TotalSeats,
		Price:        show.PriceDecimal(),
	}
}

func toShowResponses(shows []domain.Show) []api.ShowResponse {
	responses := make([]api.ShowResponse, len(shows))

	for i, show := range shows {
		responses[i] = toShowResponse(show)
	}

	return responses
}
