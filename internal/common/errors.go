// Package common defines shared sentinel errors used across the kiosk
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth guard failures. Recovered locally, never fatal.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordMismatch   = errors.New("passwords do not match")

	// Generic internal failure.
	ErrInternal = errors.New("internal error")
)
