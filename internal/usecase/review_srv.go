package usecase

import (
	"context"
	"fmt"

	"movieweb/internal/data/repository"
	"movieweb/internal/dto/request"
	"movieweb/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID, movieID int64, req *request.CreateReviewRequest) error
	GetMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error)
}

type reviewService struct {
	store repository.DataStore
	log   *zap.Logger
}

func NewReviewService(store repository.DataStore, log *zap.Logger) ReviewService {
	return &reviewService{
		store: store,
		log:   log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID, movieID int64, req *request.CreateReviewRequest) error {
	// AddReview itself validates nothing, so an orphaned review would be
	// persisted silently. Check the pair here, scoped by user id because
	// flat-file movie ids are only unique per user.
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return fmt.Errorf("get user %d: %w", userID, err)
	}

	movies, err := s.store.ListUserMovies(ctx, userID)
	if err != nil {
		return fmt.Errorf("list user movies: %w", err)
	}

	found := false
	for _, m := range movies {
		if m.ID == movieID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("movie %d for user %d: %w", movieID, userID, repository.ErrMovieNotFound)
	}

	if err := s.store.AddReview(ctx, userID, movieID, req.Text, req.Rating); err != nil {
		s.log.Error("Failed to add review",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("add review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
	)
	return nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	reviews, err := s.store.ListMovieReviews(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}
