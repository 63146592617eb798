package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/testdb"
)

type fakeExtractor struct {
	items []ReceiptItem
	err   error
}

func (f *fakeExtractor) ExtractItems(ctx context.Context, imageBase64 string) ([]ReceiptItem, error) {
	return f.items, f.err
}

func testImage() string {
	return base64.StdEncoding.EncodeToString([]byte("not a real jpeg"))
}

func TestScanStocksPantryFromReceipt(t *testing.T) {
	db := testdb.New(t)
	ingredients := NewIngredientService(db)
	extractor := &fakeExtractor{items: []ReceiptItem{
		{Name: "Milk", Quantity: 1, Unit: "l", Category: "dairy"},
		{Name: "Bananas", Quantity: 6, Unit: "pcs"},
	}}
	svc := NewReceiptService(nil, extractor, ingredients, zap.NewNop())

	userID := uuid.New()
	result, err := svc.Scan(context.Background(), userID, testImage())
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Len(t, result.Ingredients, 2)
	assert.Empty(t, result.ImageKey, "no archive without storage configured")

	pantry, err := ingredients.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, pantry, 2)
}

func TestScanAcceptsDataURIPrefix(t *testing.T) {
	db := testdb.New(t)
	svc := NewReceiptService(nil, &fakeExtractor{}, NewIngredientService(db), zap.NewNop())

	_, err := svc.Scan(context.Background(), uuid.New(), "data:image/jpeg;base64,"+testImage())
	require.NoError(t, err)
}

func TestScanRejectsInvalidEncoding(t *testing.T) {
	db := testdb.New(t)
	svc := NewReceiptService(nil, &fakeExtractor{}, NewIngredientService(db), zap.NewNop())

	_, err := svc.Scan(context.Background(), uuid.New(), "!!!not-base64!!!")
	require.Error(t, err)
}

func TestScanPropagatesExtractionFailure(t *testing.T) {
	db := testdb.New(t)
	extractor := &fakeExtractor{err: errors.New("model offline")}
	svc := NewReceiptService(nil, extractor, NewIngredientService(db), zap.NewNop())

	_, err := svc.Scan(context.Background(), uuid.New(), testImage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "receipt extraction failed")
}

func TestParseReceiptItems(t *testing.T) {
	items, err := parseReceiptItems("```json\n[{\"name\": \"Milk\", \"quantity\": 0}]\n```")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, 1.0, items[0].Quantity, "non-positive quantities default to 1")

	items, err = parseReceiptItems(`[{"name": ""}, {"name": "Eggs", "quantity": 12}]`)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Eggs", items[0].Name)

	_, err = parseReceiptItems("no json here")
	require.Error(t, err)
}
