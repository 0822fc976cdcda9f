package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const userColumns = `id, email, password_hash, name, picture, google_id, skin_tone, undertone, created_at, updated_at`

// Create inserts a new user row. A duplicate email maps to ErrEmailTaken.
func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, password_hash, name, picture, google_id, skin_tone, undertone, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		strings.ToLower(user.Email),
		nullableString(user.PasswordHash),
		user.Name,
		user.Picture,
		nullableString(user.GoogleID),
		nullableString(user.SkinTone),
		nullableString(user.Undertone),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetByID returns a user by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail returns a user by email.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update writes the mutable profile fields.
func (r *PGRepo) Update(ctx context.Context, user User) error {
	const query = `
UPDATE users
SET name = $2, picture = $3, skin_tone = $4, undertone = $5, updated_at = $6
WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Picture,
		nullableString(user.SkinTone),
		nullableString(user.Undertone),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertGoogle creates or links an account for a federated identity. A row
// matching the Google id wins; otherwise a row with the same email is linked;
// otherwise a fresh account is created.
func (r *PGRepo) UpsertGoogle(ctx context.Context, user User) (User, error) {
	byGoogle := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`
	existing, err := scanUser(r.DB.QueryRowContext(ctx, byGoogle, user.GoogleID))
	if err == nil {
		existing.Name = user.Name
		existing.Picture = user.Picture
		if err := r.Update(ctx, existing); err != nil {
			return User{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return User{}, fmt.Errorf("lookup google user: %w", err)
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	const query = `
INSERT INTO users (id, email, password_hash, name, picture, google_id, skin_tone, undertone, created_at, updated_at)
VALUES ($1, $2, NULL, $3, $4, $5, NULL, NULL, $6, $6)
ON CONFLICT (email) DO UPDATE
SET google_id = EXCLUDED.google_id, name = EXCLUDED.name, picture = EXCLUDED.picture, updated_at = EXCLUDED.updated_at
RETURNING ` + userColumns

	u, err := scanUser(r.DB.QueryRowContext(ctx, query,
		user.ID,
		strings.ToLower(user.Email),
		user.Name,
		user.Picture,
		user.GoogleID,
		now,
	))
	if err != nil {
		return User{}, fmt.Errorf("upsert google user: %w", err)
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var u User
	var passwordHash, googleID, skinTone, undertone sql.NullString
	err := row.Scan(
		&u.ID,
		&u.Email,
		&passwordHash,
		&u.Name,
		&u.Picture,
		&googleID,
		&skinTone,
		&undertone,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return User{}, err
	}
	u.PasswordHash = passwordHash.String
	u.GoogleID = googleID.String
	u.SkinTone = skinTone.String
	u.Undertone = undertone.String
	return u, nil
}

func nullableString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func isUniqueViolation(err error) bool {
	// pgx wraps server errors with the SQLSTATE in the message.
	return strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "duplicate key")
}
