package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/boplan/boplan-backend/internal/websocket"
)

// ProfileService handles budget profile business logic
type ProfileService struct {
	profileRepo domain.ProfileRepository
	publisher   websocket.EventPublisher
	notifier    *RecalcNotifier
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo domain.ProfileRepository, publisher websocket.EventPublisher, notifier *RecalcNotifier) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		publisher:   publisher,
		notifier:    notifier,
	}
}

// Create validates and persists a new profile for the user
func (s *ProfileService) Create(userID uuid.UUID, name string, input domain.CalculationInput) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID: userID,
		Name:   strings.TrimSpace(name),
		Input:  input,
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := validateInput(&profile.Input); err != nil {
		return nil, err
	}

	created, err := s.profileRepo.Create(profile)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create profile")
		return nil, err
	}

	s.publisher.Publish(userID, websocket.ProfileCreated(created))
	s.notifier.Trigger(userID, created)

	return created, nil
}

// Get retrieves a profile owned by the user
func (s *ProfileService) Get(userID, id uuid.UUID) (*domain.Profile, error) {
	return s.profileRepo.GetByID(userID, id)
}

// GetAll retrieves all profiles owned by the user
func (s *ProfileService) GetAll(userID uuid.UUID) ([]*domain.Profile, error) {
	return s.profileRepo.GetAllByUser(userID)
}

// Update replaces a profile's name and calculation input
func (s *ProfileService) Update(userID, id uuid.UUID, name string, input domain.CalculationInput) (*domain.Profile, error) {
	existing, err := s.profileRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(name)
	existing.Input = input
	if err := existing.Validate(); err != nil {
		return nil, err
	}
	if err := validateInput(&existing.Input); err != nil {
		return nil, err
	}

	updated, err := s.profileRepo.Update(existing)
	if err != nil {
		log.Error().Err(err).Str("profile_id", id.String()).Msg("Failed to update profile")
		return nil, err
	}

	s.publisher.Publish(userID, websocket.ProfileUpdated(updated))
	s.notifier.Trigger(userID, updated)

	return updated, nil
}

// Delete removes a profile owned by the user
func (s *ProfileService) Delete(userID, id uuid.UUID) error {
	if err := s.profileRepo.Delete(userID, id); err != nil {
		return err
	}

	s.notifier.Cancel(id)
	s.publisher.Publish(userID, websocket.ProfileDeleted(map[string]uuid.UUID{"id": id}))

	return nil
}

// validateInput checks structural constraints on calculation input before it
// is persisted. The engine itself tolerates anything; stored profiles should
// not accumulate garbage.
func validateInput(input *domain.CalculationInput) error {
	if len(input.Loans) > domain.MaxLoans {
		return domain.ErrTooManyLoans
	}
	for i := range input.Loans {
		// Drafts may hold inactive loans mid-edit; only fully filled-in
		// loans are checked.
		if !input.Loans[i].IsActive() {
			continue
		}
		if err := input.Loans[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
