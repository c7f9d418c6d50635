// Package testutil provides hand-written mocks for the repository and
// publisher interfaces used across service and handler tests.
package testutil

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/boplan/boplan-backend/internal/websocket"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users    map[string]*domain.User
	ByID     map[uuid.UUID]*domain.User
	CreateFn func(auth0ID, email string, name, pictureURL *string) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*domain.User),
		ByID:  make(map[uuid.UUID]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByAuth0ID retrieves a user by Auth0 ID
func (m *MockUserRepository) GetByAuth0ID(auth0ID string) (*domain.User, error) {
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// CreateOrGetByAuth0ID creates or retrieves a user by Auth0 ID
func (m *MockUserRepository) CreateOrGetByAuth0ID(auth0ID, email string, name, pictureURL *string) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(auth0ID, email, name, pictureURL)
	}
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	user := &domain.User{
		ID:         uuid.New(),
		Auth0ID:    auth0ID,
		Email:      email,
		Name:       name,
		PictureURL: pictureURL,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	m.Users[auth0ID] = user
	m.ByID[user.ID] = user
	return user, nil
}

// UpdateName updates only the user's name by Auth0 ID
func (m *MockUserRepository) UpdateName(auth0ID string, name string) (*domain.User, error) {
	user, ok := m.Users[auth0ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user.Name = &name
	return user, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users[user.Auth0ID] = user
	m.ByID[user.ID] = user
}

// MockProfileRepository is a mock implementation of domain.ProfileRepository
type MockProfileRepository struct {
	Profiles map[uuid.UUID]*domain.Profile
	CreateFn func(profile *domain.Profile) (*domain.Profile, error)
	UpdateFn func(profile *domain.Profile) (*domain.Profile, error)
}

// NewMockProfileRepository creates a new MockProfileRepository
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		Profiles: make(map[uuid.UUID]*domain.Profile),
	}
}

// Create inserts a new profile
func (m *MockProfileRepository) Create(profile *domain.Profile) (*domain.Profile, error) {
	if m.CreateFn != nil {
		return m.CreateFn(profile)
	}
	created := *profile
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.Profiles[created.ID] = &created
	return &created, nil
}

// GetByID retrieves a profile by ID, scoped to its owner
func (m *MockProfileRepository) GetByID(userID, id uuid.UUID) (*domain.Profile, error) {
	profile, ok := m.Profiles[id]
	if !ok || profile.UserID != userID {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

// GetAllByUser retrieves all profiles owned by a user
func (m *MockProfileRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	for _, profile := range m.Profiles {
		if profile.UserID == userID {
			profiles = append(profiles, profile)
		}
	}
	return profiles, nil
}

// Update replaces a profile's name and input
func (m *MockProfileRepository) Update(profile *domain.Profile) (*domain.Profile, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(profile)
	}
	existing, ok := m.Profiles[profile.ID]
	if !ok || existing.UserID != profile.UserID {
		return nil, domain.ErrProfileNotFound
	}
	updated := *profile
	updated.UpdatedAt = time.Now()
	m.Profiles[updated.ID] = &updated
	return &updated, nil
}

// Delete removes a profile, scoped to its owner
func (m *MockProfileRepository) Delete(userID, id uuid.UUID) error {
	profile, ok := m.Profiles[id]
	if !ok || profile.UserID != userID {
		return domain.ErrProfileNotFound
	}
	delete(m.Profiles, id)
	return nil
}

// AddProfile adds a profile to the mock repository (helper for tests)
func (m *MockProfileRepository) AddProfile(profile *domain.Profile) {
	m.Profiles[profile.ID] = profile
}

// MockEventPublisher records published WebSocket events
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
}

// PublishedEvent pairs an event with its target user
type PublishedEvent struct {
	UserID uuid.UUID
	Event  websocket.Event
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(userID uuid.UUID, event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{UserID: userID, Event: event})
}

// Published returns a snapshot of the recorded events
func (m *MockEventPublisher) Published() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishedEvent, len(m.Events))
	copy(out, m.Events)
	return out
}

// EventTypes returns the types of recorded events in publish order
func (m *MockEventPublisher) EventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.Events))
	for _, e := range m.Events {
		types = append(types, e.Event.Type)
	}
	return types
}

// MockExportRepository is an in-memory implementation of storage.ExportRepository
type MockExportRepository struct {
	Objects   map[string][]byte
	UploadErr error
}

// NewMockExportRepository creates a new MockExportRepository
func NewMockExportRepository() *MockExportRepository {
	return &MockExportRepository{
		Objects: make(map[string][]byte),
	}
}

// Upload stores the object in memory
func (m *MockExportRepository) Upload(_ context.Context, objectPath string, data io.Reader, _ string, _ int64) (string, error) {
	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	buf, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	m.Objects[objectPath] = buf
	return objectPath, nil
}

// Delete removes an object
func (m *MockExportRepository) Delete(_ context.Context, objectPath string) error {
	delete(m.Objects, objectPath)
	return nil
}

// GeneratePresignedURL returns a deterministic fake URL
func (m *MockExportRepository) GeneratePresignedURL(_ context.Context, objectPath string, _ time.Duration) (string, error) {
	return "https://exports.test/" + objectPath, nil
}
