package repository

import (
	"context"
	"fmt"
	"os"
	"sync"

	"movieweb/internal/data/entity"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type jsonMovie struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Director string  `json:"director"`
	Year     int     `json:"year"`
	Rating   float64 `json:"rating"`
}

type jsonUser struct {
	ID     int64        `json:"id"`
	Name   string       `json:"name"`
	Age    int          `json:"age"`
	Movies []*jsonMovie `json:"movies"`
}

type jsonReview struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	MovieID    int64   `json:"movie_id"`
	ReviewText string  `json:"review_text"`
	Rating     float64 `json:"rating"`
}

// jsonFileStore is the flat-file DataStore backend. One JSON document holds
// the users with their movies embedded; reviews live in a companion document
// next to it. Every operation reads the whole file, mutates in memory, and
// rewrites the whole file. A process-local mutex serializes writers, so this
// backend is safe for single-process deployments only.
//
// Inherited behavior, kept for parity with the source data format:
//   - movie ids are unique per user, not globally
//   - next id = max existing id + 1, so deleting the highest-id entry and
//     re-adding reuses that id
type jsonFileStore struct {
	path        string
	reviewsPath string
	mu          sync.Mutex
	log         *zap.Logger
}

// NewJSONFileStore returns the flat-file DataStore backend rooted at path.
// Reviews are stored in "<path>.reviews".
func NewJSONFileStore(path string, log *zap.Logger) DataStore {
	return &jsonFileStore{
		path:        path,
		reviewsPath: path + ".reviews",
		log:         log.With(zap.String("store", "jsonfile")),
	}
}

// nextID assigns max existing id + 1, or 1 for an empty sequence.
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (s *jsonFileStore) loadUsers() ([]*jsonUser, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []*jsonUser{}, nil
	}
	if err != nil {
		s.log.Error("Failed to read data file", zap.Error(err), zap.String("path", s.path))
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var users []*jsonUser
	if err := json.Unmarshal(data, &users); err != nil {
		s.log.Error("Failed to parse data file", zap.Error(err), zap.String("path", s.path))
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	return users, nil
}

func (s *jsonFileStore) saveUsers(users []*jsonUser) error {
	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Error("Failed to write data file", zap.Error(err), zap.String("path", s.path))
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

func (s *jsonFileStore) loadReviews() ([]*jsonReview, error) {
	data, err := os.ReadFile(s.reviewsPath)
	if os.IsNotExist(err) {
		return []*jsonReview{}, nil
	}
	if err != nil {
		s.log.Error("Failed to read reviews file", zap.Error(err), zap.String("path", s.reviewsPath))
		return nil, fmt.Errorf("failed to read reviews file: %w", err)
	}

	var reviews []*jsonReview
	if err := json.Unmarshal(data, &reviews); err != nil {
		s.log.Error("Failed to parse reviews file", zap.Error(err), zap.String("path", s.reviewsPath))
		return nil, fmt.Errorf("failed to parse reviews file: %w", err)
	}
	return reviews, nil
}

func (s *jsonFileStore) saveReviews(reviews []*jsonReview) error {
	data, err := json.MarshalIndent(reviews, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode reviews file: %w", err)
	}
	if err := os.WriteFile(s.reviewsPath, data, 0644); err != nil {
		s.log.Error("Failed to write reviews file", zap.Error(err), zap.String("path", s.reviewsPath))
		return fmt.Errorf("failed to write reviews file: %w", err)
	}
	return nil
}

func findUser(users []*jsonUser, userID int64) *jsonUser {
	for _, user := range users {
		if user.ID == userID {
			return user
		}
	}
	return nil
}

func toMovieEntity(m *jsonMovie) *entity.Movie {
	return &entity.Movie{
		ID:       m.ID,
		Title:    m.Name,
		Director: m.Director,
		Year:     m.Year,
		Rating:   m.Rating,
	}
}

func (s *jsonFileStore) ListUsers(ctx context.Context) ([]*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}

	result := make([]*entity.User, 0, len(users))
	for _, u := range users {
		result = append(result, &entity.User{ID: u.ID, Name: u.Name, Age: u.Age})
	}
	return result, nil
}

func (s *jsonFileStore) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}

	user := findUser(users, userID)
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &entity.User{ID: user.ID, Name: user.Name, Age: user.Age}, nil
}

func (s *jsonFileStore) ListUserMovies(ctx context.Context, userID int64) ([]*entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}

	movies := []*entity.Movie{}
	user := findUser(users, userID)
	if user == nil {
		return movies, nil
	}

	for _, m := range user.Movies {
		movies = append(movies, toMovieEntity(m))
	}
	return movies, nil
}

func (s *jsonFileStore) AddUser(ctx context.Context, name string, age int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return 0, err
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	userID := nextID(ids)

	users = append(users, &jsonUser{
		ID:     userID,
		Name:   name,
		Age:    age,
		Movies: []*jsonMovie{},
	})

	if err := s.saveUsers(users); err != nil {
		return 0, err
	}

	s.log.Info("User added", zap.Int64("user_id", userID), zap.String("name", name))
	return userID, nil
}

func (s *jsonFileStore) AddUserMovie(ctx context.Context, userID int64, title, director string, year int, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return err
	}

	user := findUser(users, userID)
	if user == nil {
		s.log.Warn("Add movie skipped, user does not exist", zap.Int64("user_id", userID))
		return nil
	}

	ids := make([]int64, 0, len(user.Movies))
	for _, m := range user.Movies {
		ids = append(ids, m.ID)
	}
	movieID := nextID(ids)

	user.Movies = append(user.Movies, &jsonMovie{
		ID:       movieID,
		Name:     title,
		Director: director,
		Year:     year,
		Rating:   rating,
	})

	if err := s.saveUsers(users); err != nil {
		return err
	}

	s.log.Info("Movie added",
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
		zap.String("title", title),
	)
	return nil
}

func (s *jsonFileStore) UpdateUserMovie(ctx context.Context, userID, movieID int64, title, director string, year int, rating float64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return false, err
	}

	user := findUser(users, userID)
	if user == nil {
		return false, nil
	}

	for _, m := range user.Movies {
		if m.ID == movieID {
			m.Name = title
			m.Director = director
			m.Year = year
			m.Rating = rating

			if err := s.saveUsers(users); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, nil
}

func (s *jsonFileStore) DeleteUserMovie(ctx context.Context, userID, movieID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return false, err
	}

	user := findUser(users, userID)
	if user == nil {
		return false, nil
	}

	for i, m := range user.Movies {
		if m.ID == movieID {
			user.Movies = append(user.Movies[:i], user.Movies[i+1:]...)

			if err := s.saveUsers(users); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, nil
}

func (s *jsonFileStore) AddReview(ctx context.Context, userID, movieID int64, text string, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews, err := s.loadReviews()
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.ID)
	}

	reviews = append(reviews, &jsonReview{
		ID:         nextID(ids),
		UserID:     userID,
		MovieID:    movieID,
		ReviewText: text,
		Rating:     rating,
	})

	return s.saveReviews(reviews)
}

func (s *jsonFileStore) ListMovieReviews(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews, err := s.loadReviews()
	if err != nil {
		return nil, err
	}

	result := []*entity.Review{}
	for _, r := range reviews {
		if r.MovieID == movieID {
			result = append(result, &entity.Review{
				ID:         r.ID,
				UserID:     r.UserID,
				MovieID:    r.MovieID,
				ReviewText: r.ReviewText,
				Rating:     r.Rating,
			})
		}
	}
	return result, nil
}

func (s *jsonFileStore) Close() error {
	return nil
}
