package usecase

import (
	"context"
	"errors"
	"testing"

	"movieweb/internal/data/repository"
	"movieweb/internal/dto/request"

	"go.uber.org/zap"
)

func TestCreateUser(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store, zap.NewNop())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &request.CreateUserRequest{Name: "Ada", Age: 30})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID != 1 || user.Name != "Ada" || user.Age != 30 {
		t.Fatalf("unexpected user: %+v", user)
	}

	// A later GetUser returns the same name and age.
	got, err := svc.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Name != "Ada" || got.Age != 30 {
		t.Fatalf("unexpected user: %+v", got)
	}

	second, err := svc.CreateUser(ctx, &request.CreateUserRequest{Name: "Grace", Age: 40})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if second.ID == user.ID {
		t.Fatalf("ids must not repeat: %d", second.ID)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	store := newFakeStore()
	store.addUserErr = repository.ErrDuplicateUser
	svc := NewUserService(store, zap.NewNop())

	_, err := svc.CreateUser(context.Background(), &request.CreateUserRequest{Name: "Ada", Age: 30})
	if !errors.Is(err, repository.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeStore(), zap.NewNop())

	_, err := svc.GetUser(context.Background(), 42)
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetAllUsers(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store, zap.NewNop())
	ctx := context.Background()

	store.AddUser(ctx, "Ada", 30)
	store.AddUser(ctx, "Grace", 40)

	users, err := svc.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("GetAllUsers failed: %v", err)
	}
	if len(users) != 2 || users[0].Name != "Ada" || users[1].Name != "Grace" {
		t.Fatalf("unexpected users: %+v", users)
	}
}
