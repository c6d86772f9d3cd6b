package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/smarttech/storefront/common"
	"github.com/smarttech/storefront/models"
	"github.com/smarttech/storefront/store"
)

func newRepo(t *testing.T) *StoreRepository {
	t.Helper()
	return NewStoreRepository(store.NewMemoryStore(nil))
}

func hash(t *testing.T, secret string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestCreate_DuplicateEmailRejected(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{ID: "1", Email: "a@example.com"}))

	// Second registration with the same email always fails, whatever the
	// other fields look like.
	err := r.Create(ctx, &models.User{ID: "2", Name: "other", Email: "a@example.com"})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	count, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFindByCredentials_MatchAndMiss(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{
		ID: "1", Email: "a@example.com", PasswordHash: hash(t, "secret"),
	}))

	u, err := r.FindByCredentials(ctx, "a@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	_, err = r.FindByCredentials(ctx, "a@example.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = r.FindByCredentials(ctx, "nobody@example.com", "secret")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestFindByEmail(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{ID: "1", Email: "a@example.com"}))

	u, err := r.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	_, err = r.FindByEmail(ctx, "b@example.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestListWithBiometrics_FiltersEmptyDescriptors(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{ID: "1", Email: "plain@example.com"}))
	require.NoError(t, r.Create(ctx, &models.User{
		ID: "2", Email: "face@example.com", FaceDescriptor: []float64{0.1, 0.2},
	}))
	require.NoError(t, r.Create(ctx, &models.User{
		ID: "3", Email: "empty@example.com", FaceDescriptor: []float64{},
	}))

	enrolled, err := r.ListWithBiometrics(ctx)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, "2", enrolled[0].ID)
}

func TestListAll_InsertionOrder(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{ID: "1", Email: "a@example.com"}))
	require.NoError(t, r.Create(ctx, &models.User{ID: "2", Email: "b@example.com"}))

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)
}
