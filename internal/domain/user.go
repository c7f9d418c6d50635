package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user backed by Auth0.
type User struct {
	ID         uuid.UUID  `json:"id"`
	Auth0ID    string     `json:"-"`
	Email      string     `json:"email"`
	Name       *string    `json:"name,omitempty"`
	PictureURL *string    `json:"pictureUrl,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
}

// UserRepository defines persistence operations for users
type UserRepository interface {
	GetByID(id uuid.UUID) (*User, error)
	GetByAuth0ID(auth0ID string) (*User, error)
	CreateOrGetByAuth0ID(auth0ID, email string, name, pictureURL *string) (*User, error)
	UpdateName(auth0ID string, name string) (*User, error)
}
