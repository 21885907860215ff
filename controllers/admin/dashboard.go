package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mustfaashraf/ecommerce-api/middleware"
	"github.com/mustfaashraf/ecommerce-api/models"
)

// GET /admin/dashboard
//
// Admins see store-wide totals; vendors see figures scoped to their own
// products.
func DashboardHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if middleware.UserRole(c) == string(models.RoleOwner) {
			vendorDashboard(c, db, callerID)
			return
		}
		adminDashboard(c, db)
	}
}

func adminDashboard(c *gin.Context, db *gorm.DB) {
	var productCount, orderCount, userCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	var revenue float64
	if err := db.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	var recentOrders []models.Order
	if err := db.Preload("Items").
		Order("created_at DESC").
		Limit(10).
		Find(&recentOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":      productCount,
		"orders":        orderCount,
		"users":         userCount,
		"revenue":       revenue,
		"recent_orders": recentOrders,
	})
}

func vendorDashboard(c *gin.Context, db *gorm.DB, vendorID string) {
	var productCount int64
	if err := db.Model(&models.Product{}).
		Where("owner_id = ?", vendorID).
		Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	type salesRow struct {
		Revenue   float64
		ItemsSold int64
	}
	var sales salesRow
	if err := db.Model(&models.Product{}).
		Where("owner_id = ?", vendorID).
		Select("COALESCE(SUM(price * sold), 0) AS revenue, COALESCE(SUM(sold), 0) AS items_sold").
		Scan(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	var topProducts []models.Product
	if err := db.Where("owner_id = ?", vendorID).
		Order("sold DESC").
		Limit(5).
		Find(&topProducts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":     productCount,
		"revenue":      sales.Revenue,
		"items_sold":   sales.ItemsSold,
		"top_products": topProducts,
	})
}
