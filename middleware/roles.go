package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mustfaashraf/ecommerce-api/models"
)

// RequireRole gates a route group to the listed roles. Authorization is a
// predicate over the caller's role; resource-level ownership checks live in
// the handlers that know which resource is touched.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		if !allowed[models.Role(UserRole(c))] {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanManageProduct decides whether the caller may mutate a product: admins
// always, vendors only for their own listings.
func CanManageProduct(role models.Role, callerID, productOwnerID string) bool {
	if role == models.RoleAdmin {
		return true
	}
	return role == models.RoleOwner && callerID == productOwnerID
}
