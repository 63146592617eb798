package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/testdb"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/types"
)

func TestCatalogCreateIsIdempotentByName(t *testing.T) {
	svc := NewCatalogService(testdb.New(t))
	ctx := context.Background()
	ownerID := uuid.New()

	first, err := svc.Create(ctx, ownerID, &types.CreateProductRequest{Name: "Olive Oil", Unit: "ml"})
	require.NoError(t, err)

	// Same name with different spacing and case resolves to the same row.
	second, err := svc.Create(ctx, uuid.New(), &types.CreateProductRequest{Name: "  olive   OIL "})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Olive Oil", second.Name)
	assert.Equal(t, "ml", second.Unit)
}

func TestCatalogCreateDefaultsUnit(t *testing.T) {
	svc := NewCatalogService(testdb.New(t))

	product, err := svc.Create(context.Background(), uuid.New(), &types.CreateProductRequest{Name: "Avocado"})
	require.NoError(t, err)
	assert.Equal(t, "pcs", product.Unit)
}

func TestCatalogSearch(t *testing.T) {
	svc := NewCatalogService(testdb.New(t))
	ctx := context.Background()
	ownerID := uuid.New()

	for _, name := range []string{"Whole Milk", "Oat Milk", "Butter"} {
		_, err := svc.Create(ctx, ownerID, &types.CreateProductRequest{Name: name, Category: "dairy"})
		require.NoError(t, err)
	}

	results, err := svc.Search(ctx, "milk")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	all, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCategory, err := svc.Search(ctx, "dairy")
	require.NoError(t, err)
	assert.Len(t, byCategory, 3)

	none, err := svc.Search(ctx, "garlic")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNormalizeProductName(t *testing.T) {
	assert.Equal(t, "olive oil", NormalizeProductName("  Olive   OIL "))
	assert.Equal(t, "milk", NormalizeProductName("Milk"))
	assert.Equal(t, "", NormalizeProductName("   "))
}
