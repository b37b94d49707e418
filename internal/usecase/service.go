package usecase

import (
	"context"

	"movieweb/internal/data/repository"
	"movieweb/internal/omdb"

	"go.uber.org/zap"
)

// MetadataLookup resolves a movie title to descriptive fields. Satisfied by
// *omdb.Client.
type MetadataLookup interface {
	Lookup(ctx context.Context, title string) (*omdb.Metadata, error)
}

type Service struct {
	User   UserService
	Movie  MovieService
	Review ReviewService
}

func NewService(store repository.DataStore, lookup MetadataLookup, log *zap.Logger) *Service {
	return &Service{
		User:   NewUserService(store, log),
		Movie:  NewMovieService(store, lookup, log),
		Review: NewReviewService(store, log),
	}
}
