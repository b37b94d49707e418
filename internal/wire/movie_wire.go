package wire

import (
	"movieweb/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/users/{userId}/movies", func(r chi.Router) {
		// GET /api/users/{userId}/movies - the user's favorite movies
		r.Get("/", movieHandler.GetUserMovies)

		// POST /api/users/{userId}/movies - add by full details or by
		// title-only metadata lookup
		r.Post("/", movieHandler.CreateMovie)

		// PUT /api/users/{userId}/movies/{movieId} - update
		r.Put("/{movieId}", movieHandler.UpdateMovie)

		// DELETE /api/users/{userId}/movies/{movieId} - remove
		r.Delete("/{movieId}", movieHandler.DeleteMovie)
	})
}
