package users

import "errors"

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("user not found")

// ErrEmailTaken is returned on registration with an existing email.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials covers both unknown email and wrong password so the
// two cases are indistinguishable to a caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidInput marks request validation failures.
var ErrInvalidInput = errors.New("invalid input")
