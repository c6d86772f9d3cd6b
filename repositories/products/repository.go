// Package products is the typed view over the products channel: catalog CRUD,
// the distinct category list, and the starter catalog installed on first run.
package products

import (
	"context"

	"github.com/smarttech/storefront/models"
)

// Repository describes the catalog operations.
type Repository interface {
	// List returns the catalog in insertion order, installing the seed
	// catalog first if the channel is empty.
	List(ctx context.Context) ([]models.Product, error)

	// Create appends a new product.
	Create(ctx context.Context, p *models.Product) error

	// Update replaces the product with the same id, or returns
	// common.ErrNotFound.
	Update(ctx context.Context, p *models.Product) error

	// Delete removes the product by id, or returns common.ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Categories returns the distinct categories in order of first
	// appearance in the catalog.
	Categories(ctx context.Context) ([]string, error)
}
