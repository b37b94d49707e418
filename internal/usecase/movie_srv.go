package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movieweb/internal/data/repository"
	"movieweb/internal/dto/request"
	"movieweb/internal/dto/response"

	"go.uber.org/zap"
)

var (
	// ErrDuplicateMovie means the user already has a movie with that title.
	ErrDuplicateMovie = errors.New("movie already exists for user")

	// ErrIncompleteMovie means the creation request supplied some but not
	// all of director, year, and rating.
	ErrIncompleteMovie = errors.New("director, year and rating must be provided together")
)

type MovieService interface {
	GetUserMovies(ctx context.Context, userID int64) ([]response.MovieResponse, error)
	CreateMovie(ctx context.Context, userID int64, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, userID, movieID int64, req *request.UpdateMovieRequest) error
	DeleteMovie(ctx context.Context, userID, movieID int64) error
}

type movieService struct {
	store  repository.DataStore
	lookup MetadataLookup
	log    *zap.Logger
}

func NewMovieService(store repository.DataStore, lookup MetadataLookup, log *zap.Logger) MovieService {
	return &movieService{
		store:  store,
		lookup: lookup,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetUserMovies(ctx context.Context, userID int64) ([]response.MovieResponse, error) {
	// ListUserMovies returns an empty slice for an unknown user, so the
	// user existence check has to happen separately.
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	movies, err := s.store.ListUserMovies(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list user movies",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("list user movies: %w", err)
	}

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) CreateMovie(ctx context.Context, userID int64, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	// AddUserMovie silently no-ops for an unknown user; pre-check so the
	// caller gets a NotFound instead of a phantom success.
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	title := req.Title
	director := ""
	year := 0
	rating := 0.0

	switch {
	case req.Complete():
		director = *req.Director
		year = *req.Year
		rating = *req.Rating
	case req.LookupOnly():
		meta, err := s.lookup.Lookup(ctx, req.Title)
		if err != nil {
			s.log.Warn("Metadata lookup failed",
				zap.Error(err),
				zap.String("title", req.Title),
			)
			return nil, fmt.Errorf("lookup %q: %w", req.Title, err)
		}
		title = meta.Title
		director = meta.Director
		year = meta.Year
		rating = meta.Rating
	default:
		return nil, ErrIncompleteMovie
	}

	// Reject a second movie with the same title for this user.
	existing, err := s.store.ListUserMovies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user movies: %w", err)
	}
	for _, m := range existing {
		if strings.EqualFold(m.Title, title) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMovie, title)
		}
	}

	if err := s.store.AddUserMovie(ctx, userID, title, director, year, rating); err != nil {
		s.log.Error("Failed to add movie",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("add movie: %w", err)
	}

	// Re-read to pick up the assigned id.
	movies, err := s.store.ListUserMovies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user movies: %w", err)
	}
	for _, m := range movies {
		if strings.EqualFold(m.Title, title) {
			resp := response.MovieToResponse(m)
			return &resp, nil
		}
	}

	// The store accepted the movie but it is not listed; surfaced as an
	// internal failure.
	return nil, fmt.Errorf("movie %q not visible after add", title)
}

func (s *movieService) UpdateMovie(ctx context.Context, userID, movieID int64, req *request.UpdateMovieRequest) error {
	ok, err := s.store.UpdateUserMovie(ctx, userID, movieID, req.Title, req.Director, req.Year, req.Rating)
	if err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("update movie: %w", err)
	}
	if !ok {
		return fmt.Errorf("update movie %d for user %d: %w", movieID, userID, repository.ErrMovieNotFound)
	}

	s.log.Info("Movie updated",
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
	)
	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, userID, movieID int64) error {
	ok, err := s.store.DeleteUserMovie(ctx, userID, movieID)
	if err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}
	if !ok {
		return fmt.Errorf("delete movie %d for user %d: %w", movieID, userID, repository.ErrMovieNotFound)
	}

	s.log.Info("Movie deleted",
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
	)
	return nil
}
