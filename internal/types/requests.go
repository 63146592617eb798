package types

// CreateIngredientRequest represents the request body for adding a pantry item
type CreateIngredientRequest struct {
	Name       string  `json:"name" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"min=0"`
	Unit       string  `json:"unit"`
	Category   string  `json:"category"`
	ExpiryDate string  `json:"expiry_date"` // RFC 3339 date, optional
}

// UpdateIngredientRequest represents the request body for updating a pantry item
type UpdateIngredientRequest struct {
	Name       *string  `json:"name"`
	Quantity   *float64 `json:"quantity"`
	Unit       *string  `json:"unit"`
	Category   *string  `json:"category"`
	ExpiryDate *string  `json:"expiry_date"`
}

// CreateProductRequest represents the request body for creating a catalog product
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price" binding:"min=0"`
	Category string  `json:"category"`
	Store    string  `json:"store"`
}

// AddCartItemRequest represents the request body for adding a product to the cart
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest represents the request body for changing a cart line quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// FulfillIngredient is one missing ingredient to resolve into a cart line
type FulfillIngredient struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// FulfillCartRequest represents the request body for cart fulfillment of a
// recipe's missing ingredients
type FulfillCartRequest struct {
	Ingredients []FulfillIngredient `json:"ingredients"`
}

// ScanReceiptRequest represents the request body for a receipt scan
type ScanReceiptRequest struct {
	Image string `json:"image" binding:"required"` // base64, with or without data URI prefix
}
