package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mustfaashraf/ecommerce-api/models"
)

// GetProducts lists products with simple filtering and pagination.
// Query params: category, name, min_price, max_price, page, limit.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if limit < 1 || limit > 100 {
			limit = 10
		}
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}

		// Numeric filters are validated up front; a bad value is the
		// caller's error, not a query failure.
		var categoryID uint64
		if category := c.Query("category"); category != "" {
			id, err := strconv.ParseUint(category, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			categoryID = id
		}
		var minPrice, maxPrice *float64
		if raw := c.Query("min_price"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			minPrice = &v
		}
		if raw := c.Query("max_price"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			maxPrice = &v
		}

		query := db.Model(&models.Product{}).Preload("Category")
		if categoryID != 0 {
			query = query.Where("category_id = ?", categoryID)
		}
		if name := c.Query("name"); name != "" {
			query = query.Where("name ILIKE ?", "%"+name+"%")
		}
		if minPrice != nil {
			query = query.Where("price >= ?", *minPrice)
		}
		if maxPrice != nil {
			query = query.Where("price <= ?", *maxPrice)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Order("created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"meta":     gin.H{"total": total, "page": page, "limit": limit},
		})
	}
}

// GetOwnProducts lists the products managed by the caller: everything for
// admins, only own listings for vendors.
func GetOwnProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Category").Order("created_at DESC")
		if isVendor(c) {
			userID, _ := userIDFrom(c)
			query = query.Where("owner_id = ?", userID)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
