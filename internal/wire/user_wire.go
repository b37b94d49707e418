package wire

import (
	"movieweb/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	// GET /api/users - list all users
	r.Get("/api/users", userHandler.GetUsers)

	// POST /api/users - add a user
	r.Post("/api/users", userHandler.CreateUser)
}
