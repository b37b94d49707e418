package adaptor

import (
	"context"
	"net/http/httptest"

	"movieweb/internal/dto/request"
	"movieweb/internal/dto/response"
	"movieweb/pkg/utils"

	"github.com/goccy/go-json"
)

type mockUserService struct {
	users     []response.UserResponse
	user      *response.UserResponse
	err       error
	createdID int64
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]response.UserResponse, error) {
	return m.users, m.err
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (*response.UserResponse, error) {
	return m.user, m.err
}

func (m *mockUserService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &response.UserResponse{ID: m.createdID, Name: req.Name, Age: req.Age}, nil
}

type mockMovieService struct {
	movies []response.MovieResponse
	movie  *response.MovieResponse
	err    error
	calls  int
}

func (m *mockMovieService) GetUserMovies(ctx context.Context, userID int64) ([]response.MovieResponse, error) {
	m.calls++
	return m.movies, m.err
}

func (m *mockMovieService) CreateMovie(ctx context.Context, userID int64, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	m.calls++
	return m.movie, m.err
}

func (m *mockMovieService) UpdateMovie(ctx context.Context, userID, movieID int64, req *request.UpdateMovieRequest) error {
	m.calls++
	return m.err
}

func (m *mockMovieService) DeleteMovie(ctx context.Context, userID, movieID int64) error {
	m.calls++
	return m.err
}

type mockReviewService struct {
	reviews []response.ReviewResponse
	err     error
	calls   int
}

func (m *mockReviewService) CreateReview(ctx context.Context, userID, movieID int64, req *request.CreateReviewRequest) error {
	m.calls++
	return m.err
}

func (m *mockReviewService) GetMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	m.calls++
	return m.reviews, m.err
}

func decodeResponse(rec *httptest.ResponseRecorder) utils.Response {
	var resp utils.Response
	json.Unmarshal(rec.Body.Bytes(), &resp)
	return resp
}
