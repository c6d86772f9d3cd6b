// Package users is the typed view over the users channel: registration with
// email uniqueness, credential lookup, and enrollment filtering.
package users

import (
	"context"

	"github.com/smarttech/storefront/models"
)

// Repository describes the operations on registered accounts.
type Repository interface {
	// Create inserts a new user. Returns common.ErrDuplicateEmail if the
	// email is already registered; no partial state is written in that case.
	Create(ctx context.Context, user *models.User) error

	// FindByEmail returns the user with the given email, or
	// common.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByCredentials returns the user whose email and password secret
	// both match, or common.ErrInvalidCredentials.
	FindByCredentials(ctx context.Context, email, secret string) (*models.User, error)

	// ListAll returns every user in insertion order.
	ListAll(ctx context.Context) ([]models.User, error)

	// ListWithBiometrics returns the users holding a non-empty face
	// descriptor, in insertion order.
	ListWithBiometrics(ctx context.Context) ([]models.User, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int, error)
}
