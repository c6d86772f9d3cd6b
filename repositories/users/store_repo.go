package users

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/smarttech/storefront/common"
	"github.com/smarttech/storefront/models"
	"github.com/smarttech/storefront/store"
)

// StoreRepository implements Repository over the users channel of a Store.
type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) load(ctx context.Context) []models.User {
	var all []models.User
	r.store.Get(ctx, store.KeyUsers, &all)
	return all
}

func (r *StoreRepository) Create(ctx context.Context, user *models.User) error {
	all := r.load(ctx)
	for _, u := range all {
		if u.Email == user.Email {
			return common.ErrDuplicateEmail
		}
	}
	all = append(all, *user)
	r.store.Set(ctx, store.KeyUsers, all)
	return nil
}

func (r *StoreRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.load(ctx) {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *StoreRepository) FindByCredentials(ctx context.Context, email, secret string) (*models.User, error) {
	for _, u := range r.load(ctx) {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(secret)) != nil {
			return nil, common.ErrInvalidCredentials
		}
		return &u, nil
	}
	return nil, common.ErrInvalidCredentials
}

func (r *StoreRepository) ListAll(ctx context.Context) ([]models.User, error) {
	return r.load(ctx), nil
}

func (r *StoreRepository) ListWithBiometrics(ctx context.Context) ([]models.User, error) {
	var result []models.User
	for _, u := range r.load(ctx) {
		if u.HasBiometrics() {
			result = append(result, u)
		}
	}
	return result, nil
}

func (r *StoreRepository) Count(ctx context.Context) (int, error) {
	return len(r.load(ctx)), nil
}
