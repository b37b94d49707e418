package adaptor

import (
	"errors"
	"net/http"

	"movieweb/internal/data/repository"
	"movieweb/internal/dto/request"
	"movieweb/internal/omdb"
	"movieweb/internal/usecase"
	"movieweb/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetUserMovies handles GET /api/users/{userId}/movies
func (h *MovieHandler) GetUserMovies(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	movies, err := h.service.GetUserMovies(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// CreateMovie handles POST /api/users/{userId}/movies. The body carries
// either the full movie details or a bare title that triggers a metadata
// lookup.
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	var req request.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Validation failed", zap.String("details", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie added successfully", movie)
}

// UpdateMovie handles PUT /api/users/{userId}/movies/{movieId}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	movieID, err := parseIDParam(r, "movieId")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	var req request.UpdateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Validation failed", zap.String("details", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateMovie(r.Context(), userID, movieID, &req); err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", nil)
}

// DeleteMovie handles DELETE /api/users/{userId}/movies/{movieId}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	movieID, err := parseIDParam(r, "movieId")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	if err := h.service.DeleteMovie(r.Context(), userID, movieID); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		h.log.Warn(operation+" failed - user not found", zap.Error(err))
		utils.ResponseNotFound(w, "User not found")

	case errors.Is(err, repository.ErrMovieNotFound):
		h.log.Warn(operation+" failed - movie not found", zap.Error(err))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, omdb.ErrMovieNotFound):
		// Distinct from a transport failure: the title is unknown, the
		// caller should retry with different input.
		h.log.Warn(operation+" failed - metadata not found", zap.Error(err))
		utils.ResponseNotFound(w, "Movie not found by metadata service, try a different title")

	case errors.Is(err, omdb.ErrServiceUnavailable):
		h.log.Error(operation+" failed - metadata service unavailable", zap.Error(err))
		utils.ResponseBadGateway(w, "Metadata service unavailable, try again later")

	case errors.Is(err, usecase.ErrDuplicateMovie):
		h.log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseConflict(w, "Movie with the same title already exists for the user")

	case errors.Is(err, usecase.ErrIncompleteMovie):
		h.log.Warn(operation+" failed - incomplete request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
