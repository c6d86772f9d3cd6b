package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarttech/storefront/common"
	"github.com/smarttech/storefront/models"
	"github.com/smarttech/storefront/store"
)

func newRepo(t *testing.T) *StoreRepository {
	t.Helper()
	return NewStoreRepository(store.NewMemoryStore(nil))
}

func TestCreate_MostRecentFirst(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Order{ID: "older", Status: models.OrderStatusProcessing}))
	require.NoError(t, r.Create(ctx, &models.Order{ID: "newer", Status: models.OrderStatusProcessing}))

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "newer", all[0].ID)
	assert.Equal(t, "older", all[1].ID)
}

func TestUpdateStatus_ProcessingToTerminal(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Order{ID: "o1", Status: models.OrderStatusProcessing}))
	require.NoError(t, r.UpdateStatus(ctx, "o1", models.OrderStatusAccepted))

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAccepted, all[0].Status)
}

func TestUpdateStatus_TerminalIsSticky(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Order{ID: "o1", Status: models.OrderStatusProcessing}))
	require.NoError(t, r.UpdateStatus(ctx, "o1", models.OrderStatusAccepted))

	err := r.UpdateStatus(ctx, "o1", models.OrderStatusRejected)
	require.ErrorIs(t, err, common.ErrInvalidTransition)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAccepted, all[0].Status)
}

func TestUpdateStatus_InvalidTarget(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Order{ID: "o1", Status: models.OrderStatusProcessing}))

	err := r.UpdateStatus(ctx, "o1", models.OrderStatusProcessing)
	require.ErrorIs(t, err, common.ErrInvalidTransition)

	err = r.UpdateStatus(ctx, "o1", models.OrderStatus("Shipped"))
	require.ErrorIs(t, err, common.ErrInvalidTransition)
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	r := newRepo(t)
	err := r.UpdateStatus(context.Background(), "ghost", models.OrderStatusAccepted)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestListForUser_FiltersByOwner(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.Order{ID: "a1", UserID: "alice"}))
	require.NoError(t, r.Create(ctx, &models.Order{ID: "b1", UserID: "bob"}))
	require.NoError(t, r.Create(ctx, &models.Order{ID: "a2", UserID: "alice"}))

	mine, err := r.ListForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "a2", mine[0].ID)
	assert.Equal(t, "a1", mine[1].ID)
}
