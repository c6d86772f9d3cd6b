// Package cart is the typed view over the single session-scoped cart channel.
package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/smarttech/storefront/models"
)

// Repository describes the cart operations. There is exactly one cart per
// store profile; it belongs to the active session, not to a user.
type Repository interface {
	// Lines returns the cart content in insertion order.
	Lines(ctx context.Context) ([]models.CartLine, error)

	// Add puts the product in the cart: an existing line gains quantity 1,
	// otherwise a new line with quantity 1 is appended.
	Add(ctx context.Context, p *models.Product) error

	// SetQuantity sets the line quantity. n <= 0 removes the line.
	SetQuantity(ctx context.Context, productID string, n int) error

	// Remove drops the line for the product, if present.
	Remove(ctx context.Context, productID string) error

	// Total returns the sum of price times quantity over all lines.
	Total(ctx context.Context) (decimal.Decimal, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error
}
