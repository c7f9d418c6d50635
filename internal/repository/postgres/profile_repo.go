package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boplan/boplan-backend/internal/domain"
)

// ProfileRepository implements domain.ProfileRepository using PostgreSQL.
// Calculation input is stored as a JSONB document; the engine's input shape
// evolves faster than it is worth migrating into relational columns.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `id, user_id, name, input, created_at, updated_at`

// Create inserts a new profile and returns it with generated fields
func (r *ProfileRepository) Create(profile *domain.Profile) (*domain.Profile, error) {
	input, err := json.Marshal(profile.Input)
	if err != nil {
		return nil, fmt.Errorf("marshaling profile input: %w", err)
	}

	query := `
		INSERT INTO budget_profiles (user_id, name, input)
		VALUES ($1, $2, $3)
		RETURNING ` + profileColumns

	row := r.pool.QueryRow(context.Background(), query,
		pgtype.UUID{Bytes: profile.UserID, Valid: true}, profile.Name, input)
	return scanProfile(row)
}

// GetByID retrieves a profile by ID, scoped to its owner
func (r *ProfileRepository) GetByID(userID, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM budget_profiles WHERE id = $1 AND user_id = $2`

	row := r.pool.QueryRow(context.Background(), query,
		pgtype.UUID{Bytes: id, Valid: true}, pgtype.UUID{Bytes: userID, Valid: true})
	return scanProfile(row)
}

// GetAllByUser retrieves all profiles owned by a user, newest first
func (r *ProfileRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM budget_profiles WHERE user_id = $1 ORDER BY updated_at DESC`

	rows, err := r.pool.Query(context.Background(), query, pgtype.UUID{Bytes: userID, Valid: true})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// Update replaces a profile's name and input, scoped to its owner
func (r *ProfileRepository) Update(profile *domain.Profile) (*domain.Profile, error) {
	input, err := json.Marshal(profile.Input)
	if err != nil {
		return nil, fmt.Errorf("marshaling profile input: %w", err)
	}

	query := `
		UPDATE budget_profiles SET name = $3, input = $4, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + profileColumns

	row := r.pool.QueryRow(context.Background(), query,
		pgtype.UUID{Bytes: profile.ID, Valid: true},
		pgtype.UUID{Bytes: profile.UserID, Valid: true},
		profile.Name, input)
	return scanProfile(row)
}

// Delete removes a profile, scoped to its owner
func (r *ProfileRepository) Delete(userID, id uuid.UUID) error {
	query := `DELETE FROM budget_profiles WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(context.Background(), query,
		pgtype.UUID{Bytes: id, Valid: true}, pgtype.UUID{Bytes: userID, Valid: true})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		id      pgtype.UUID
		userID  pgtype.UUID
		profile domain.Profile
		input   []byte
	)
	err := row.Scan(&id, &userID, &profile.Name, &input, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	profile.ID = uuid.UUID(id.Bytes)
	profile.UserID = uuid.UUID(userID.Bytes)
	if err := json.Unmarshal(input, &profile.Input); err != nil {
		return nil, fmt.Errorf("unmarshaling profile input: %w", err)
	}
	return &profile, nil
}
