package adaptor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movieweb/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newReviewRouter(svc *mockReviewService) *chi.Mux {
	h := NewReviewHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/users/{userId}/movies/{movieId}/reviews", h.CreateReview)
	r.Get("/api/movies/{movieId}/reviews", h.GetMovieReviews)
	return r
}

func postReview(t *testing.T, router *chi.Mux, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/users/1/movies/1/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// The 0-10 bound is enforced before any persistence call: the boundary
// values pass, anything outside is rejected without reaching the service.
func TestCreateReviewRatingBounds(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantStatus int
		wantCalls  int
	}{
		{"rating 0 accepted", `{"text":"meh","rating":0.0}`, http.StatusCreated, 1},
		{"rating 10 accepted", `{"text":"perfect","rating":10.0}`, http.StatusCreated, 1},
		{"rating below range", `{"text":"x","rating":-0.1}`, http.StatusBadRequest, 0},
		{"rating above range", `{"text":"x","rating":10.1}`, http.StatusBadRequest, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockReviewService{}
			rec := postReview(t, newReviewRouter(svc), tc.body)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.wantStatus, rec.Code, rec.Body.String())
			}
			if svc.calls != tc.wantCalls {
				t.Fatalf("expected %d service calls, got %d", tc.wantCalls, svc.calls)
			}
		})
	}
}

func TestCreateReviewMissingText(t *testing.T) {
	svc := &mockReviewService{}
	rec := postReview(t, newReviewRouter(svc), `{"rating":5}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.calls != 0 {
		t.Fatal("service must not be called on validation failure")
	}
}

func TestCreateReviewUnknownMovie(t *testing.T) {
	svc := &mockReviewService{err: repository.ErrMovieNotFound}
	rec := postReview(t, newReviewRouter(svc), `{"text":"x","rating":5}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateReviewInvalidBody(t *testing.T) {
	svc := &mockReviewService{}
	rec := postReview(t, newReviewRouter(svc), `not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetMovieReviews(t *testing.T) {
	svc := &mockReviewService{}
	req := httptest.NewRequest(http.MethodGet, "/api/movies/1/reviews", nil)
	rec := httptest.NewRecorder()
	newReviewRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeResponse(rec); !resp.Status {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
}

func TestGetMovieReviewsInvalidID(t *testing.T) {
	svc := &mockReviewService{}
	req := httptest.NewRequest(http.MethodGet, "/api/movies/abc/reviews", nil)
	rec := httptest.NewRecorder()
	newReviewRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.calls != 0 {
		t.Fatal("service must not be called with an invalid id")
	}
}
