package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/models"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.Summary)
}

// Summary aggregates the counts the home screen shows.
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	db := h.db.WithContext(ctx)

	var ingredientCount, expiringCount, cartCount, orderCount, unreadCount int64

	if err := db.Model(&models.Ingredient{}).Where("user_id = ?", userID).Count(&ingredientCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	cutoff := time.Now().AddDate(0, 0, 7)
	if err := db.Model(&models.Ingredient{}).
		Where("user_id = ? AND expiry_date IS NOT NULL AND expiry_date <= ?", userID, cutoff).
		Count(&expiringCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&orderCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&unreadCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredients":          ingredientCount,
		"expiring_soon":        expiringCount,
		"cart_items":           cartCount,
		"orders":               orderCount,
		"unread_notifications": unreadCount,
	})
}
