package productcontroller

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mustfaashraf/ecommerce-api/models"
)

// DeleteProduct removes a product and its image file. Cart items that
// still reference the product are left in place; the cart view and the
// checkout engine both tolerate the dangling reference.
func DeleteProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		if !mayManage(c, &product) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		if product.Image != "" {
			imagePath := filepath.Join(uploadDir, strings.TrimPrefix(product.Image, "/uploads/"))
			if err := os.Remove(imagePath); err != nil && !os.IsNotExist(err) {
				logrus.WithError(err).WithField("path", imagePath).Warn("failed to remove product image")
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
