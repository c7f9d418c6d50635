package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is a named, saved calculation input set owned by a user. The engine
// itself never reads or writes profiles; they only feed it input.
type Profile struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Name      string           `json:"name"`
	Input     CalculationInput `json:"input"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func (p *Profile) Validate() error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > MaxProfileNameLength {
		return ErrNameTooLong
	}
	return nil
}

// ProfileRepository defines persistence operations for budget profiles
type ProfileRepository interface {
	Create(profile *Profile) (*Profile, error)
	GetByID(userID, id uuid.UUID) (*Profile, error)
	GetAllByUser(userID uuid.UUID) ([]*Profile, error)
	Update(profile *Profile) (*Profile, error)
	Delete(userID, id uuid.UUID) error
}
