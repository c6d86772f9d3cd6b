package products

import (
	"context"

	"github.com/smarttech/storefront/common"
	"github.com/smarttech/storefront/logging"
	"github.com/smarttech/storefront/models"
	"github.com/smarttech/storefront/store"
)

// StoreRepository implements Repository over the products channel of a Store.
type StoreRepository struct {
	store store.Store
	log   logging.Logger
}

func NewStoreRepository(s store.Store, log logging.Logger) *StoreRepository {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &StoreRepository{store: s, log: log}
}

// load returns the catalog, seeding the starter products when the channel is
// empty. An explicitly emptied catalog (admin deleted everything) stays empty
// because the channel then holds an empty array rather than nothing.
func (r *StoreRepository) load(ctx context.Context) []models.Product {
	var all []models.Product
	if !r.store.Get(ctx, store.KeyProducts, &all) {
		all = SeedCatalog()
		r.store.Set(ctx, store.KeyProducts, all)
		r.log.Info(ctx, "installed starter catalog", "products", len(all))
	}
	return all
}

func (r *StoreRepository) List(ctx context.Context) ([]models.Product, error) {
	return r.load(ctx), nil
}

func (r *StoreRepository) Create(ctx context.Context, p *models.Product) error {
	all := append(r.load(ctx), *p)
	r.store.Set(ctx, store.KeyProducts, all)
	return nil
}

func (r *StoreRepository) Update(ctx context.Context, p *models.Product) error {
	all := r.load(ctx)
	for i := range all {
		if all[i].ID == p.ID {
			all[i] = *p
			r.store.Set(ctx, store.KeyProducts, all)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	all := r.load(ctx)
	for i := range all {
		if all[i].ID == id {
			all = append(all[:i], all[i+1:]...)
			r.store.Set(ctx, store.KeyProducts, all)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *StoreRepository) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range r.load(ctx) {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}
