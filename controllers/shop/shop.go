package shopControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mustfaashraf/ecommerce-api/models"
)

// GET /shop
//
// Landing page data: featured categories, the newest products and the
// best sellers, fetched in one round trip for the storefront.
func ShopHome(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Limit(6).Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shop data"})
			return
		}

		var newArrivals []models.Product
		if err := db.Preload("Category").
			Order("created_at DESC").
			Limit(8).
			Find(&newArrivals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shop data"})
			return
		}

		var bestSellers []models.Product
		if err := db.Preload("Category").
			Where("sold > 0").
			Order("sold DESC").
			Limit(8).
			Find(&bestSellers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shop data"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"categories":   categories,
			"new_arrivals": newArrivals,
			"best_sellers": bestSellers,
		})
	}
}
