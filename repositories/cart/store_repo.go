package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/smarttech/storefront/models"
	"github.com/smarttech/storefront/store"
)

// StoreRepository implements Repository over the cart channel of a Store.
type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) load(ctx context.Context) []models.CartLine {
	var lines []models.CartLine
	r.store.Get(ctx, store.KeyCart, &lines)
	return lines
}

func (r *StoreRepository) save(ctx context.Context, lines []models.CartLine) {
	r.store.Set(ctx, store.KeyCart, lines)
}

func (r *StoreRepository) Lines(ctx context.Context) ([]models.CartLine, error) {
	return r.load(ctx), nil
}

func (r *StoreRepository) Add(ctx context.Context, p *models.Product) error {
	lines := r.load(ctx)
	for i := range lines {
		if lines[i].ProductID == p.ID {
			lines[i].Quantity++
			r.save(ctx, lines)
			return nil
		}
	}
	lines = append(lines, models.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
	r.save(ctx, lines)
	return nil
}

func (r *StoreRepository) SetQuantity(ctx context.Context, productID string, n int) error {
	if n <= 0 {
		return r.Remove(ctx, productID)
	}
	lines := r.load(ctx)
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = n
			r.save(ctx, lines)
			return nil
		}
	}
	return nil
}

func (r *StoreRepository) Remove(ctx context.Context, productID string) error {
	lines := r.load(ctx)
	for i := range lines {
		if lines[i].ProductID == productID {
			lines = append(lines[:i], lines[i+1:]...)
			r.save(ctx, lines)
			return nil
		}
	}
	return nil
}

func (r *StoreRepository) Total(ctx context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.load(ctx) {
		total = total.Add(l.Subtotal())
	}
	return total, nil
}

func (r *StoreRepository) Clear(ctx context.Context) error {
	r.save(ctx, []models.CartLine{})
	return nil
}
