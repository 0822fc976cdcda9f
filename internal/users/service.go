package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	sharedauth "beauty-backend/internal/shared/auth"
)

const minPasswordLen = 6

// Service implements account operations over a Repo.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// ProfileUpdate carries optional profile fields. Nil means leave unchanged.
type ProfileUpdate struct {
	Name      *string `json:"name"`
	SkinTone  *string `json:"skinTone"`
	Undertone *string `json:"undertone"`
}

// Register creates a local account and returns the user with a signed token.
func (s *Service) Register(ctx context.Context, email, password, name string) (User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, "", fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return User{}, "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Login authenticates a local account. Unknown email and wrong password both
// return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}
	if user.PasswordHash == "" || !VerifyPassword(password, user.PasswordHash) {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateProfile applies the supplied fields to the user's profile. At least
// one field must be present.
func (s *Service) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (User, error) {
	if update.Name == nil && update.SkinTone == nil && update.Undertone == nil {
		return User{}, fmt.Errorf("%w: no valid fields to update", ErrInvalidInput)
	}

	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.SkinTone != nil {
		user.SkinTone = strings.TrimSpace(*update.SkinTone)
	}
	if update.Undertone != nil {
		user.Undertone = strings.TrimSpace(*update.Undertone)
	}
	if err := s.Repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

// UpsertGoogleUser links or creates an account for a Google identity.
func (s *Service) UpsertGoogleUser(ctx context.Context, googleID, email, name, picture string) (User, error) {
	if googleID == "" || email == "" {
		return User{}, fmt.Errorf("%w: google id and email are required", ErrInvalidInput)
	}
	return s.Repo.UpsertGoogle(ctx, User{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Name:     strings.TrimSpace(name),
		Picture:  picture,
		GoogleID: googleID,
	})
}

// IssueToken signs a JWT for the given user.
func (s *Service) IssueToken(user User) (string, error) {
	return s.issueToken(user)
}

func (s *Service) issueToken(user User) (string, error) {
	return sharedauth.SignJWT(sharedauth.Claims{
		Sub:     user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	})
}
