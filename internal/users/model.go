package users

import "time"

// User is an account holder. PasswordHash and GoogleID never serialize.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Picture      string    `json:"picture,omitempty"`
	GoogleID     string    `json:"-"`
	SkinTone     string    `json:"skinTone,omitempty"`
	Undertone    string    `json:"undertone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
