package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/testdb"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/types"
)

func TestIngredientCreateAndList(t *testing.T) {
	svc := NewIngredientService(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, &types.CreateIngredientRequest{
		Name:     "Tomato",
		Quantity: 3,
		Unit:     "pcs",
		Category: "vegetable",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	ingredients, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Tomato", ingredients[0].Name)
	assert.Equal(t, 3.0, ingredients[0].Quantity)

	other, err := svc.List(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestIngredientCreateRejectsNegativeQuantity(t *testing.T) {
	svc := NewIngredientService(testdb.New(t))

	_, err := svc.Create(context.Background(), uuid.New(), &types.CreateIngredientRequest{
		Name:     "Tomato",
		Quantity: -1,
	})
	require.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestIngredientCreateParsesExpiryDate(t *testing.T) {
	svc := NewIngredientService(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, &types.CreateIngredientRequest{
		Name:       "Yogurt",
		Quantity:   1,
		ExpiryDate: "2026-09-15",
	})
	require.NoError(t, err)
	require.NotNil(t, created.ExpiryDate)
	assert.Equal(t, 2026, created.ExpiryDate.Year())

	_, err = svc.Create(ctx, userID, &types.CreateIngredientRequest{
		Name:       "Yogurt",
		Quantity:   1,
		ExpiryDate: "next tuesday",
	})
	require.Error(t, err)
}

func TestIngredientUpdatePartialFields(t *testing.T) {
	svc := NewIngredientService(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, &types.CreateIngredientRequest{
		Name:     "Cheddar",
		Quantity: 200,
		Unit:     "g",
	})
	require.NoError(t, err)

	newQty := 150.0
	updated, err := svc.Update(ctx, userID, created.ID, &types.UpdateIngredientRequest{Quantity: &newQty})
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Quantity)
	assert.Equal(t, "Cheddar", updated.Name)
	assert.Equal(t, "g", updated.Unit)

	negative := -5.0
	_, err = svc.Update(ctx, userID, created.ID, &types.UpdateIngredientRequest{Quantity: &negative})
	require.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestIngredientDeleteScopedToOwner(t *testing.T) {
	svc := NewIngredientService(testdb.New(t))
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, &types.CreateIngredientRequest{Name: "Bread", Quantity: 1})
	require.NoError(t, err)

	err = svc.Delete(ctx, uuid.New(), created.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, svc.Delete(ctx, owner, created.ID))

	_, err = svc.Get(ctx, owner, created.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestIngredientExpiringSoon(t *testing.T) {
	svc := NewIngredientService(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()

	soon := time.Now().AddDate(0, 0, 2).Format(time.RFC3339)
	far := time.Now().AddDate(0, 1, 0).Format(time.RFC3339)

	_, err := svc.Create(ctx, userID, &types.CreateIngredientRequest{Name: "Milk", Quantity: 1, ExpiryDate: soon})
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, &types.CreateIngredientRequest{Name: "Honey", Quantity: 1, ExpiryDate: far})
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, &types.CreateIngredientRequest{Name: "Rice", Quantity: 1})
	require.NoError(t, err)

	expiring, err := svc.ExpiringSoon(ctx, userID, 7)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "Milk", expiring[0].Name)
}

func TestIngredientBulkCreate(t *testing.T) {
	svc := NewIngredientService(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.BulkCreate(ctx, userID, []types.CreateIngredientRequest{
		{Name: "Onion", Quantity: 2, Unit: "pcs"},
		{Name: "Garlic", Quantity: 1, Unit: "head"},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)

	ingredients, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, ingredients, 2)

	empty, err := svc.BulkCreate(ctx, userID, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
