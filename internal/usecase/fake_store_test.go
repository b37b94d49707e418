package usecase

import (
	"context"

	"movieweb/internal/data/entity"
	"movieweb/internal/data/repository"
	"movieweb/internal/omdb"
)

// fakeStore is an in-memory DataStore test double honoring the contract
// semantics the services depend on.
type fakeStore struct {
	users      []*entity.User
	movies     map[int64][]*entity.Movie
	reviews    []*entity.Review
	nextUserID int64

	addUserErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{movies: map[int64][]*entity.Movie{}}
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return f.users, nil
}

func (f *fakeStore) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeStore) ListUserMovies(ctx context.Context, userID int64) ([]*entity.Movie, error) {
	movies := f.movies[userID]
	if movies == nil {
		return []*entity.Movie{}, nil
	}
	return movies, nil
}

func (f *fakeStore) AddUser(ctx context.Context, name string, age int) (int64, error) {
	if f.addUserErr != nil {
		return 0, f.addUserErr
	}
	f.nextUserID++
	f.users = append(f.users, &entity.User{ID: f.nextUserID, Name: name, Age: age})
	return f.nextUserID, nil
}

func (f *fakeStore) AddUserMovie(ctx context.Context, userID int64, title, director string, year int, rating float64) error {
	if _, err := f.GetUser(ctx, userID); err != nil {
		// Silent no-op per contract.
		return nil
	}
	id := int64(len(f.movies[userID]) + 1)
	f.movies[userID] = append(f.movies[userID], &entity.Movie{
		ID:       id,
		Title:    title,
		Director: director,
		Year:     year,
		Rating:   rating,
	})
	return nil
}

func (f *fakeStore) UpdateUserMovie(ctx context.Context, userID, movieID int64, title, director string, year int, rating float64) (bool, error) {
	for _, m := range f.movies[userID] {
		if m.ID == movieID {
			m.Title = title
			m.Director = director
			m.Year = year
			m.Rating = rating
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) DeleteUserMovie(ctx context.Context, userID, movieID int64) (bool, error) {
	movies := f.movies[userID]
	for i, m := range movies {
		if m.ID == movieID {
			f.movies[userID] = append(movies[:i], movies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) AddReview(ctx context.Context, userID, movieID int64, text string, rating float64) error {
	f.reviews = append(f.reviews, &entity.Review{
		ID:         int64(len(f.reviews) + 1),
		UserID:     userID,
		MovieID:    movieID,
		ReviewText: text,
		Rating:     rating,
	})
	return nil
}

func (f *fakeStore) ListMovieReviews(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	result := []*entity.Review{}
	for _, r := range f.reviews {
		if r.MovieID == movieID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeStore) Close() error { return nil }

// mockLookup is a MetadataLookup test double.
type mockLookup struct {
	meta  *omdb.Metadata
	err   error
	calls int
}

func (m *mockLookup) Lookup(ctx context.Context, title string) (*omdb.Metadata, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.meta, nil
}
