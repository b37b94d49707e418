package repository

import (
	"context"
	"errors"

	"movieweb/internal/data/entity"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrMovieNotFound = errors.New("movie not found")
	ErrDuplicateUser = errors.New("user already exists")
)

// DataStore is the capability contract both persistence backends satisfy.
// Presentation code stays backend-agnostic; the active backend is selected
// by configuration at startup.
//
// One caveat carries across backends: movie ids are global in the relational
// store but unique only within a user's movie list in the flat-file store.
// Callers must always scope movie lookups by user id.
type DataStore interface {
	// ListUsers returns every user.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns the user, or ErrUserNotFound.
	GetUser(ctx context.Context, userID int64) (*entity.User, error)

	// ListUserMovies returns the user's favorite movies. The slice is empty
	// when the user has no movies or does not exist.
	ListUserMovies(ctx context.Context, userID int64) ([]*entity.Movie, error)

	// AddUser creates a user and returns the newly assigned id.
	// ErrDuplicateUser on a uniqueness violation.
	AddUser(ctx context.Context, name string, age int) (int64, error)

	// AddUserMovie adds a movie to the user's favorites. Silently no-ops
	// when the user does not exist; callers must pre-check existence.
	AddUserMovie(ctx context.Context, userID int64, title, director string, year int, rating float64) error

	// UpdateUserMovie returns false when the user or the movie (scoped to
	// that user) is not found. Nothing is mutated in that case.
	UpdateUserMovie(ctx context.Context, userID, movieID int64, title, director string, year int, rating float64) (bool, error)

	// DeleteUserMovie returns false under the same not-found conditions as
	// UpdateUserMovie.
	DeleteUserMovie(ctx context.Context, userID, movieID int64) (bool, error)

	// AddReview stores a review. No existence validation of user or movie
	// is performed here.
	AddReview(ctx context.Context, userID, movieID int64, text string, rating float64) error

	// ListMovieReviews returns the movie's reviews in insertion order.
	ListMovieReviews(ctx context.Context, movieID int64) ([]*entity.Review, error)

	Close() error
}
