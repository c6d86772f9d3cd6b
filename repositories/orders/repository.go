// Package orders is the typed view over the orders channel: newest-first
// creation and the guarded status transition.
package orders

import (
	"context"

	"github.com/smarttech/storefront/models"
)

// Repository describes the order persistence operations.
type Repository interface {
	// Create prepends the order, so ListAll returns most recent first.
	Create(ctx context.Context, o *models.Order) error

	// UpdateStatus moves the order to status. Only Processing orders may
	// transition, and only to Accepted or Rejected; anything else returns
	// common.ErrInvalidTransition and changes nothing. An unknown id
	// returns common.ErrNotFound.
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error

	// ListAll returns every order, most recent first.
	ListAll(ctx context.Context) ([]models.Order, error)

	// ListForUser returns the orders placed by the user, most recent first.
	ListForUser(ctx context.Context, userID string) ([]models.Order, error)
}
