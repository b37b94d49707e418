package wire

import (
	"movieweb/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// POST /api/users/{userId}/movies/{movieId}/reviews - review a movie
	r.Post("/api/users/{userId}/movies/{movieId}/reviews", reviewHandler.CreateReview)

	// GET /api/movies/{movieId}/reviews - reviews for a movie
	r.Get("/api/movies/{movieId}/reviews", reviewHandler.GetMovieReviews)
}
