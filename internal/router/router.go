package router

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/api"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth          *api.AuthHandler
	Ingredients   *api.IngredientHandler
	Catalog       *api.CatalogHandler
	Cart          *api.CartHandler
	Orders        *api.OrderHandler
	Notifications *api.NotificationHandler
	Suggestions   *api.SuggestionHandler
	Receipts      *api.ReceiptHandler
	Dashboard     *api.DashboardHandler
}

// SetupRouter configures the application routes
func SetupRouter(
	logger *zap.Logger,
	validator middleware.TokenValidator,
	suggestionLimiter *middleware.RateLimiter,
	handlers Handlers,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(logger))
	router.Use(requestid.New())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	handlers.Auth.RegisterRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		handlers.Ingredients.RegisterRoutes(protected)
		handlers.Catalog.RegisterRoutes(protected)
		handlers.Cart.RegisterRoutes(protected)
		handlers.Orders.RegisterRoutes(protected)
		handlers.Notifications.RegisterRoutes(protected)
		handlers.Receipts.RegisterRoutes(protected)
		handlers.Dashboard.RegisterRoutes(protected)

		if suggestionLimiter != nil {
			handlers.Suggestions.RegisterRoutes(protected, suggestionLimiter.RateLimitMiddleware())
		} else {
			handlers.Suggestions.RegisterRoutes(protected)
		}
	}

	return router
}
