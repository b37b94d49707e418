package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movieweb/internal/data/entity"
	"movieweb/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type postgresStore struct {
	db  database.PgxIface
	log *zap.Logger
}

// NewPostgresStore returns the relational DataStore backend. Movie ids are
// global; a user's favorites are resolved via a join over the favorites
// table.
func NewPostgresStore(db database.PgxIface, log *zap.Logger) DataStore {
	return &postgresStore{
		db:  db,
		log: log.With(zap.String("store", "postgres")),
	}
}

func (s *postgresStore) ListUsers(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT id, name, age FROM users ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*entity.User{}
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Age); err != nil {
			s.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		s.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return users, nil
}

func (s *postgresStore) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	query := `SELECT id, name, age FROM users WHERE id = $1`

	var user entity.User
	err := s.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Name, &user.Age)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		s.log.Error("Failed to get user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *postgresStore) ListUserMovies(ctx context.Context, userID int64) ([]*entity.Movie, error) {
	query := `
		SELECT m.id, m.title, m.director, m.year, m.rating, m.genre, m.release_date
		FROM movies m
		JOIN favorites f ON m.id = f.movie_id
		WHERE f.user_id = $1
		ORDER BY m.id
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		s.log.Error("Failed to list user movies",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("failed to list user movies: %w", err)
	}
	defer rows.Close()

	movies := []*entity.Movie{}
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Director,
			&movie.Year,
			&movie.Rating,
			&movie.Genre,
			&movie.ReleaseDate,
		)
		if err != nil {
			s.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		s.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return movies, nil
}

func (s *postgresStore) AddUser(ctx context.Context, name string, age int) (int64, error) {
	query := `INSERT INTO users (name, age) VALUES ($1, $2) RETURNING id`

	var id int64
	err := s.db.QueryRow(ctx, query, name, age).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrDuplicateUser
		}
		s.log.Error("Failed to add user",
			zap.Error(err),
			zap.String("name", name),
		)
		return 0, fmt.Errorf("failed to add user: %w", err)
	}

	s.log.Info("User added", zap.Int64("user_id", id), zap.String("name", name))
	return id, nil
}

func (s *postgresStore) AddUserMovie(ctx context.Context, userID int64, title, director string, year int, rating float64) error {
	// The contract says adding a movie for an unknown user is a no-op.
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		s.log.Error("Failed to check user existence",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		s.log.Warn("Add movie skipped, user does not exist", zap.Int64("user_id", userID))
		return nil
	}

	// Movie row and favorite link land atomically.
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var movieID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO movies (title, director, year, rating) VALUES ($1, $2, $3, $4) RETURNING id`,
		title, director, year, rating,
	).Scan(&movieID)
	if err != nil {
		s.log.Error("Failed to insert movie",
			zap.Error(err),
			zap.String("title", title),
		)
		return fmt.Errorf("failed to insert movie: %w", err)
	}

	now := time.Now()
	fav := entity.Favorite{UserID: userID, MovieID: movieID, FavoriteDate: &now}
	_, err = tx.Exec(ctx,
		`INSERT INTO favorites (user_id, movie_id, favorite_date) VALUES ($1, $2, $3)`,
		fav.UserID, fav.MovieID, fav.FavoriteDate,
	)
	if err != nil {
		s.log.Error("Failed to insert favorite",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.log.Info("Movie added",
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
		zap.String("title", title),
	)
	return nil
}

func (s *postgresStore) UpdateUserMovie(ctx context.Context, userID, movieID int64, title, director string, year int, rating float64) (bool, error) {
	query := `
		UPDATE movies m
		SET title = $3, director = $4, year = $5, rating = $6
		FROM favorites f
		WHERE m.id = $2 AND f.movie_id = m.id AND f.user_id = $1
	`

	result, err := s.db.Exec(ctx, query, userID, movieID, title, director, year, rating)
	if err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return false, fmt.Errorf("failed to update movie: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (s *postgresStore) DeleteUserMovie(ctx context.Context, userID, movieID int64) (bool, error) {
	// Only the favorite link is removed; the movie row itself stays.
	query := `DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2`

	result, err := s.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		s.log.Error("Failed to delete favorite",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	s.log.Info("Movie removed from favorites",
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", movieID),
	)
	return true, nil
}

func (s *postgresStore) AddReview(ctx context.Context, userID, movieID int64, text string, rating float64) error {
	query := `INSERT INTO reviews (user_id, movie_id, review_text, rating) VALUES ($1, $2, $3, $4)`

	_, err := s.db.Exec(ctx, query, userID, movieID, text, rating)
	if err != nil {
		s.log.Error("Failed to add review",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("failed to add review: %w", err)
	}

	return nil
}

func (s *postgresStore) ListMovieReviews(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, review_text, rating
		FROM reviews
		WHERE movie_id = $1
		ORDER BY id
	`

	rows, err := s.db.Query(ctx, query, movieID)
	if err != nil {
		s.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*entity.Review{}
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.ReviewText,
			&review.Rating,
		)
		if err != nil {
			s.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		s.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return reviews, nil
}

func (s *postgresStore) Close() error {
	s.db.Close()
	return nil
}
