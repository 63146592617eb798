package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/service"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/testdb"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/types"
)

// asUser injects an authenticated user, standing in for the JWT middleware.
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func setupCartRouter(t *testing.T, userID uuid.UUID) (*gin.Engine, *service.CatalogService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.New(t)
	cart := service.NewCartService(db, zap.NewNop())
	catalog := service.NewCatalogService(db)

	r := gin.New()
	v1 := r.Group("/api/v1", asUser(userID))
	NewCartHandler(cart).RegisterRoutes(v1)
	NewCatalogHandler(catalog).RegisterRoutes(v1)
	return r, catalog
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestFulfillEndpointAddsMissingIngredients(t *testing.T) {
	userID := uuid.New()
	r, _ := setupCartRouter(t, userID)

	w := postJSON(r, "/api/v1/cart/fulfill", types.FulfillCartRequest{
		Ingredients: []types.FulfillIngredient{
			{Name: "Maple Syrup", Quantity: "1", Unit: "cup"},
			{Name: "Blueberries"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result service.FulfillmentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 2, result.Added)
	assert.Empty(t, result.Failures)

	// Cart now holds both new products.
	wList := httptest.NewRecorder()
	r.ServeHTTP(wList, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	require.Equal(t, http.StatusOK, wList.Code)
	var listResp struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(wList.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Items, 2)
}

func TestFulfillEndpointEmptyRequest(t *testing.T) {
	r, _ := setupCartRouter(t, uuid.New())

	w := postJSON(r, "/api/v1/cart/fulfill", types.FulfillCartRequest{})
	require.Equal(t, http.StatusOK, w.Code)

	var result service.FulfillmentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 0, result.Attempted)
	assert.Equal(t, 0, result.Added)
}

func TestFulfillEndpointNothingAdded(t *testing.T) {
	r, _ := setupCartRouter(t, uuid.New())

	w := postJSON(r, "/api/v1/cart/fulfill", map[string]interface{}{
		"ingredients": []map[string]string{{"name": "   "}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "no ingredients could be added")
}

func TestCartAddEndpointErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testdb.New(t)
	cart := service.NewCartService(db, zap.NewNop())

	r := gin.New()
	v1 := r.Group("/api/v1", asUser(uuid.New()))
	NewCartHandler(cart).RegisterRoutes(v1)

	// Unknown product is the caller's mistake.
	w := postJSON(r, "/api/v1/cart/items", types.AddCartItemRequest{ProductID: uuid.NewString(), Quantity: 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")

	// A broken database connection is not.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w = postJSON(r, "/api/v1/cart/items", types.AddCartItemRequest{ProductID: uuid.NewString(), Quantity: 1})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCartAddEndpointValidation(t *testing.T) {
	r, catalog := setupCartRouter(t, uuid.New())

	w := postJSON(r, "/api/v1/cart/items", map[string]interface{}{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/v1/cart/items", types.AddCartItemRequest{ProductID: "not-a-uuid", Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	product, err := catalog.Create(context.Background(), uuid.New(), &types.CreateProductRequest{Name: "Tea"})
	require.NoError(t, err)

	w = postJSON(r, "/api/v1/cart/items", types.AddCartItemRequest{ProductID: product.ID.String(), Quantity: 2})
	assert.Equal(t, http.StatusCreated, w.Code)
}
