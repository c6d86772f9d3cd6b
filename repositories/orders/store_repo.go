package orders

import (
	"context"

	"github.com/smarttech/storefront/common"
	"github.com/smarttech/storefront/models"
	"github.com/smarttech/storefront/store"
)

// StoreRepository implements Repository over the orders channel of a Store.
type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) load(ctx context.Context) []models.Order {
	var all []models.Order
	r.store.Get(ctx, store.KeyOrders, &all)
	return all
}

func (r *StoreRepository) Create(ctx context.Context, o *models.Order) error {
	all := append([]models.Order{*o}, r.load(ctx)...)
	r.store.Set(ctx, store.KeyOrders, all)
	return nil
}

func (r *StoreRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	all := r.load(ctx)
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if !all[i].Status.CanTransition(status) {
			return common.ErrInvalidTransition
		}
		all[i].Status = status
		r.store.Set(ctx, store.KeyOrders, all)
		return nil
	}
	return common.ErrNotFound
}

func (r *StoreRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	return r.load(ctx), nil
}

func (r *StoreRepository) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	var result []models.Order
	for _, o := range r.load(ctx) {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}
