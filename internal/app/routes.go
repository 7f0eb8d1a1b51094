package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Get("/{movieId}", app.GetMovie)

		r.With(app.requireAuthentication).Post("/", app.CreateMovie)
		r.With(app.requireAuthentication).Delete("/{movieId}", app.DeleteMovie)
		r.With(app.requireAuthentication).Post("/{movieId}/shows", app.CreateShow)
	})

	r.With(app.requireAuthentication).Get("/shows/{showId}/seats", app.GetShowSeatMap)

	r.With(app.requireAuthentication).Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBooking)
		r.Get("/", app.GetUserBookings)
		r.Get("/{bookingId}", app.GetUserBooking)
		r.Delete("/{bookingId}", app.CancelBooking)
	})

	return r
}
