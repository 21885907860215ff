package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mustfaashraf/ecommerce-api/config"
	adminControllers "github.com/mustfaashraf/ecommerce-api/controllers/admin"
	cartControllers "github.com/mustfaashraf/ecommerce-api/controllers/cart"
	couponControllers "github.com/mustfaashraf/ecommerce-api/controllers/coupon"
	messageControllers "github.com/mustfaashraf/ecommerce-api/controllers/message"
	orderControllers "github.com/mustfaashraf/ecommerce-api/controllers/order"
	productcontroller "github.com/mustfaashraf/ecommerce-api/controllers/product"
	userControllers "github.com/mustfaashraf/ecommerce-api/controllers/user"
	"github.com/mustfaashraf/ecommerce-api/events"
	"github.com/mustfaashraf/ecommerce-api/middleware"
	"github.com/mustfaashraf/ecommerce-api/models"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Vendors (role owner)
// share the group but only see endpoints that scope to their own products;
// everything else is admin-only.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, pub *events.Publisher, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	adminGroup.Use(middleware.RequireRole(models.RoleAdmin, models.RoleOwner))
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/dashboard", adminControllers.DashboardHandler(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db, cfg.UploadDir))
			productAdmin.GET("", productcontroller.GetOwnProducts(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db, cfg.UploadDir))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderFeedHandler)
		}

		// Everything below is admin-only.
		adminOnly := adminGroup.Group("")
		adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminOnly.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db, pub))
			adminOnly.DELETE("/orders/:orderID", orderControllers.DeleteOrderHandler(db))

			// ─────────── Category Management ───────────
			categoryAdmin := adminOnly.Group("/categories")
			{
				categoryAdmin.POST("", productcontroller.CreateCategory(db))
				categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
				categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
			}

			// ─────────── Coupon Management ───────────
			couponAdmin := adminOnly.Group("/coupons")
			{
				couponAdmin.GET("", couponControllers.GetCoupons(db))
				couponAdmin.POST("", couponControllers.CreateCoupon(db))
				couponAdmin.POST("/:id/toggle", couponControllers.ToggleCouponStatus(db))
				couponAdmin.DELETE("/:id", couponControllers.DeleteCoupon(db))
			}

			// ─────────── Users & Support ───────────
			adminOnly.GET("/users", userControllers.GetAllUsers(db))
			adminOnly.GET("/user-cart/:user_id", cartControllers.GetUserCartForAdmin(db))
			messageAdmin := adminOnly.Group("/messages")
			{
				messageAdmin.GET("", messageControllers.GetMessages(db))
				messageAdmin.POST("/:id/toggle-read", messageControllers.ToggleMessageRead(db))
				messageAdmin.DELETE("/:id", messageControllers.DeleteMessage(db))
			}
		}
	}
}
