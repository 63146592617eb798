package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/testdb"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/types"
)

type orderFixture struct {
	db            *gorm.DB
	orders        *OrderService
	cart          *CartService
	catalog       *CatalogService
	ingredients   *IngredientService
	notifications *NotificationService
}

func newOrderFixture(t *testing.T) *orderFixture {
	db := testdb.New(t)
	notifications := NewNotificationService(db)
	return &orderFixture{
		db:            db,
		orders:        NewOrderService(db, notifications, zap.NewNop()),
		cart:          NewCartService(db, zap.NewNop()),
		catalog:       NewCatalogService(db),
		ingredients:   NewIngredientService(db),
		notifications: notifications,
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Place(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderSnapshotsClearsAndRestocks(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	milk, err := f.catalog.Create(ctx, userID, &types.CreateProductRequest{Name: "Milk", Unit: "l", Price: 1.5})
	require.NoError(t, err)
	eggs, err := f.catalog.Create(ctx, userID, &types.CreateProductRequest{Name: "Eggs", Unit: "pcs", Price: 0.3})
	require.NoError(t, err)

	_, err = f.cart.Add(ctx, userID, milk.ID, 2)
	require.NoError(t, err)
	_, err = f.cart.Add(ctx, userID, eggs.ID, 6)
	require.NoError(t, err)

	order, err := f.orders.Place(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "placed", order.Status)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 2*1.5+6*0.3, order.Total, 0.001)

	// Cart is cleared.
	items, err := f.cart.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Pantry restocked with the ordered products.
	pantry, err := f.ingredients.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, pantry, 2)

	// Order notification created.
	notifications, err := f.notifications.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "order", notifications[0].Type)
}

func TestOrderListAndGetScopedToUser(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	product, err := f.catalog.Create(ctx, alice, &types.CreateProductRequest{Name: "Butter", Price: 2})
	require.NoError(t, err)
	_, err = f.cart.Add(ctx, alice, product.ID, 1)
	require.NoError(t, err)

	order, err := f.orders.Place(ctx, alice)
	require.NoError(t, err)

	orders, err := f.orders.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Butter", orders[0].Items[0].Name)

	_, err = f.orders.Get(ctx, bob, order.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNotificationsMarkRead(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	created, err := f.notifications.Create(ctx, userID, "system", "welcome")
	require.NoError(t, err)
	_, err = f.notifications.Create(ctx, userID, "expiry", "milk expires tomorrow")
	require.NoError(t, err)

	count, err := f.notifications.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, f.notifications.MarkRead(ctx, userID, created.ID))

	count, err = f.notifications.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = f.notifications.MarkRead(ctx, uuid.New(), created.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, f.notifications.MarkAllRead(ctx, userID))
	count, err = f.notifications.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
