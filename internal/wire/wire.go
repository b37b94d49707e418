package wire

import (
	"net/http"

	"movieweb/internal/adaptor"
	"movieweb/internal/data/repository"
	"movieweb/internal/usecase"
	"movieweb/pkg/middleware"
	"movieweb/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies. The store is injected here; nothing
// below the wiring holds a package-level persistence handle.
func Wiring(store repository.DataStore, lookup usecase.MetadataLookup, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(store, lookup, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RateLimit(config.RateLimit, logger))

	// Apply routes
	wireUser(r, handler.User)
	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
