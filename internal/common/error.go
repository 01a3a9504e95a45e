// Package common defines sentinel errors and small helpers shared across
// the churchhub client packages. Callers should use errors.Is to match the
// error values.
package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Input rejected by form validation. Wrapped by forms.ValidationError.
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
