package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mustfaashraf/ecommerce-api/config"
	cartControllers "github.com/mustfaashraf/ecommerce-api/controllers/cart"
	orderControllers "github.com/mustfaashraf/ecommerce-api/controllers/order"
	userControllers "github.com/mustfaashraf/ecommerce-api/controllers/user"
	"github.com/mustfaashraf/ecommerce-api/events"
	"github.com/mustfaashraf/ecommerce-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, pub *events.Publisher, cfg *config.Config) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		// ─────────── Profile ───────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ─────────── Shopping Cart ───────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))
			cartGroup.POST("/items", cartControllers.AddToCart(db))
			cartGroup.POST("/items/:product_id/increase", cartControllers.IncreaseQuantity(db))
			cartGroup.POST("/items/:product_id/decrease", cartControllers.DecreaseQuantity(db))
			cartGroup.DELETE("/items/:product_id", cartControllers.RemoveFromCart(db))
			cartGroup.POST("/coupon", cartControllers.ApplyCoupon(db))
		}

		// ─────────── Checkout & Orders ───────────
		userGroup.POST("/checkout", orderControllers.PlaceOrderHandler(db, pub))
		userGroup.GET("/orders", orderControllers.GetMyOrdersHandler(db))
		userGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
