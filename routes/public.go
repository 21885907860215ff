package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	messageControllers "github.com/mustfaashraf/ecommerce-api/controllers/message"
	productcontroller "github.com/mustfaashraf/ecommerce-api/controllers/product"
	shopControllers "github.com/mustfaashraf/ecommerce-api/controllers/shop"
)

// SetupPublicRoutes registers the storefront endpoints that need no auth.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/shop", shopControllers.ShopHome(db))

	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))

	r.POST("/contact", messageControllers.SubmitMessage(db))
}
