package productcontroller

import (
	"github.com/gin-gonic/gin"

	"github.com/mustfaashraf/ecommerce-api/middleware"
	"github.com/mustfaashraf/ecommerce-api/models"
)

func isVendor(c *gin.Context) bool {
	return middleware.UserRole(c) == string(models.RoleOwner)
}

func userIDFrom(c *gin.Context) (string, bool) {
	return middleware.UserID(c)
}

// mayManage applies the role/ownership predicate before any product mutation.
func mayManage(c *gin.Context, product *models.Product) bool {
	userID, ok := middleware.UserID(c)
	if !ok {
		return false
	}
	return middleware.CanManageProduct(models.Role(middleware.UserRole(c)), userID, product.OwnerID)
}
