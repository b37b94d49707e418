package usecase

import (
	"context"
	"fmt"

	"movieweb/internal/data/repository"
	"movieweb/internal/dto/request"
	"movieweb/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]response.UserResponse, error)
	GetUser(ctx context.Context, userID int64) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
}

type userService struct {
	store repository.DataStore
	log   *zap.Logger
}

func NewUserService(store repository.DataStore, log *zap.Logger) UserService {
	return &userService{
		store: store,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	return response.UsersToResponse(users), nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	userID, err := s.store.AddUser(ctx, req.Name, req.Age)
	if err != nil {
		s.log.Warn("Failed to create user",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created", zap.Int64("user_id", userID), zap.String("name", req.Name))

	return &response.UserResponse{
		ID:   userID,
		Name: req.Name,
		Age:  req.Age,
	}, nil
}
