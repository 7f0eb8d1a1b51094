package app

import (
	"errors"
	"net/http"

	"cinebook/api"
	"cinebook/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	page, pageSize := app.readPaginationParams(r)

	pagination := domain.Pagination{
		Page:     page,
		PageSize: pageSize,
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieResponses(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	shows, err := app.showRepo.GetUpcomingByMovie(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieDetailResponse{
		MovieResponse: toMovieResponse(movie),
		Shows:         toShowResponses(shows),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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

	movie := domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		Genre:       input.Genre,
		Rating:      input.Rating,
		PosterUrl:   input.PosterUrl,
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toMovieResponse(&movie)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	movieID, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("movie deleted with its shows and seats", "movie_id", movieID)

	w.WriteHeader(http.StatusNoContent)
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genre:       movie.Genre,
		Rating:      movie.Rating,
		PosterUrl:   movie.PosterUrl,
		CreatedAt:   movie.CreatedAt,
	}
}

func toMovieResponses(movies []*domain.Movie) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(movies))

	for i, movie := range movies {
		responses[i] = toMovieResponse(movie)
	}

	return responses
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
