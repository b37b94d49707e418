package usecase

import (
	"context"
	"errors"
	"testing"

	"movieweb/internal/data/repository"
	"movieweb/internal/dto/request"

	"go.uber.org/zap"
)

func TestCreateReview(t *testing.T) {
	store := newFakeStore()
	svc := NewReviewService(store, zap.NewNop())
	ctx := context.Background()

	userID, _ := store.AddUser(ctx, "Ada", 30)
	store.AddUserMovie(ctx, userID, "Inception", "Nolan", 2010, 9.0)

	err := svc.CreateReview(ctx, userID, 1, &request.CreateReviewRequest{Text: "brilliant", Rating: 9.5})
	if err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}

	reviews, err := svc.GetMovieReviews(ctx, 1)
	if err != nil {
		t.Fatalf("GetMovieReviews failed: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Text != "brilliant" || reviews[0].Rating != 9.5 {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}
}

// A user may review the same movie more than once.
func TestCreateReviewAllowsMultiplePerPair(t *testing.T) {
	store := newFakeStore()
	svc := NewReviewService(store, zap.NewNop())
	ctx := context.Background()

	userID, _ := store.AddUser(ctx, "Ada", 30)
	store.AddUserMovie(ctx, userID, "Inception", "Nolan", 2010, 9.0)

	svc.CreateReview(ctx, userID, 1, &request.CreateReviewRequest{Text: "first", Rating: 9})
	svc.CreateReview(ctx, userID, 1, &request.CreateReviewRequest{Text: "second", Rating: 8})

	reviews, _ := svc.GetMovieReviews(ctx, 1)
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].Text != "first" || reviews[1].Text != "second" {
		t.Fatalf("reviews out of insertion order: %+v", reviews)
	}
}

func TestCreateReviewUnknownUser(t *testing.T) {
	svc := NewReviewService(newFakeStore(), zap.NewNop())

	err := svc.CreateReview(context.Background(), 42, 1, &request.CreateReviewRequest{Text: "x", Rating: 5})
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateReviewUnknownMovie(t *testing.T) {
	store := newFakeStore()
	svc := NewReviewService(store, zap.NewNop())
	ctx := context.Background()

	userID, _ := store.AddUser(ctx, "Ada", 30)

	err := svc.CreateReview(ctx, userID, 42, &request.CreateReviewRequest{Text: "x", Rating: 5})
	if !errors.Is(err, repository.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
	if len(store.reviews) != 0 {
		t.Fatal("no review may be persisted for an unknown movie")
	}
}
