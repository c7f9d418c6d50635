package service

import (
	"testing"

	"github.com/google/uuid"

	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/boplan/boplan-backend/internal/testutil"
)

func TestAuthenticateUser_NewUser(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	authService := NewAuthService(userRepo)

	name := "Anna Andersson"
	result, err := authService.AuthenticateUser("auth0|new123", "anna@example.com", &name, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.IsNewUser {
		t.Error("Expected IsNewUser to be true")
	}
	if result.User.Email != "anna@example.com" {
		t.Errorf("Expected email 'anna@example.com', got %s", result.User.Email)
	}
}

func TestAuthenticateUser_ExistingUser(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	authService := NewAuthService(userRepo)

	existing := &domain.User{
		ID:      uuid.New(),
		Auth0ID: "auth0|existing123",
		Email:   "existing@example.com",
	}
	userRepo.AddUser(existing)

	result, err := authService.AuthenticateUser("auth0|existing123", "existing@example.com", nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.IsNewUser {
		t.Error("Expected IsNewUser to be false")
	}
	if result.User.ID != existing.ID {
		t.Errorf("Expected existing user ID %s, got %s", existing.ID, result.User.ID)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	authService := NewAuthService(userRepo)

	_, err := authService.GetUserByID(uuid.New())
	if err != domain.ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateName_Success(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	authService := NewAuthService(userRepo)

	existing := &domain.User{
		ID:      uuid.New(),
		Auth0ID: "auth0|rename123",
		Email:   "rename@example.com",
	}
	userRepo.AddUser(existing)

	user, err := authService.UpdateName("auth0|rename123", "Nytt Namn")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Name == nil || *user.Name != "Nytt Namn" {
		t.Errorf("Expected name 'Nytt Namn', got %v", user.Name)
	}
}
