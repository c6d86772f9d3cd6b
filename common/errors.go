// Package common defines shared constants and sentinel errors used across
// the storefront core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoEnrollments      = errors.New("no biometric enrollments")

	// Order lifecycle errors.
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid order status transition")

	// Session errors (invalid or expired session stamp).
	ErrInvalidSession = errors.New("invalid session")
)
