package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/recipetext"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/service"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/types"
)

type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.List)
		cart.POST("/items", h.Add)
		cart.PUT("/items/:id", h.Update)
		cart.DELETE("/items/:id", h.Remove)
		cart.POST("/fulfill", h.Fulfill)
	}
}

func (h *CartHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.cart.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id"})
		return
	}

	item, err := h.cart.Add(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cart item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.cart.UpdateQuantity(c.Request.Context(), userID, id, req.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cart.Remove(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Fulfill adds a recipe's missing ingredients to the cart. Partial success
// is a 200 with the per-item failures listed; a run where nothing could be
// added is a 422.
func (h *CartHandler) Fulfill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.FulfillCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mentions := make([]recipetext.IngredientMention, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		mentions = append(mentions, recipetext.IngredientMention{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	result, err := h.cart.FulfillMissing(c.Request.Context(), userID, mentions)
	if err != nil {
		if errors.Is(err, service.ErrNothingAdded) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "result": result})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fulfill cart"})
		return
	}

	c.JSON(http.StatusOK, result)
}
