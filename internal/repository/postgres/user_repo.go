// Package postgres implements the domain repository interfaces on top of
// PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boplan/boplan-backend/internal/domain"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, auth0_id, email, name, picture_url, created_at, updated_at`

// GetByID retrieves a user by their UUID
func (r *UserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`

	row := r.pool.QueryRow(context.Background(), query, pgtype.UUID{Bytes: id, Valid: true})
	return scanUser(row)
}

// GetByAuth0ID retrieves a user by their Auth0 ID
func (r *UserRepository) GetByAuth0ID(auth0ID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth0_id = $1 AND deleted_at IS NULL`

	row := r.pool.QueryRow(context.Background(), query, auth0ID)
	return scanUser(row)
}

// CreateOrGetByAuth0ID creates a new user or returns the existing one
// (upsert on login)
func (r *UserRepository) CreateOrGetByAuth0ID(auth0ID, email string, name, pictureURL *string) (*domain.User, error) {
	query := `
		INSERT INTO users (auth0_id, email, name, picture_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (auth0_id) DO UPDATE SET
			email = EXCLUDED.email,
			updated_at = now()
		RETURNING ` + userColumns

	row := r.pool.QueryRow(context.Background(), query,
		auth0ID, email, stringPtrToPgText(name), stringPtrToPgText(pictureURL))
	return scanUser(row)
}

// UpdateName updates only the user's name by Auth0 ID
func (r *UserRepository) UpdateName(auth0ID string, name string) (*domain.User, error) {
	query := `
		UPDATE users SET name = $2, updated_at = now()
		WHERE auth0_id = $1 AND deleted_at IS NULL
		RETURNING ` + userColumns

	row := r.pool.QueryRow(context.Background(), query, auth0ID, pgtype.Text{String: name, Valid: true})
	return scanUser(row)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		id         pgtype.UUID
		user       domain.User
		name       pgtype.Text
		pictureURL pgtype.Text
	)
	err := row.Scan(&id, &user.Auth0ID, &user.Email, &name, &pictureURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	user.ID = uuid.UUID(id.Bytes)
	user.Name = pgTextToStringPtr(name)
	user.PictureURL = pgTextToStringPtr(pictureURL)
	return &user, nil
}

// Helper functions shared by the repositories in this package

func stringPtrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func pgTextToStringPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}
