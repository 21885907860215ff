package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mustfaashraf/ecommerce-api/config"
	"github.com/mustfaashraf/ecommerce-api/events"
)

// SetupRoutes is the single entry-point that wires up the public, auth,
// user and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, pub *events.Publisher, cfg *config.Config) {
	// Public storefront routes (no middleware)
	SetupPublicRoutes(r, db)

	// Register / login
	SetupAuthRoutes(r, db, cfg)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, pub, cfg)

	// Admin and vendor routes (JWT + role check)
	SetupAdminRoutes(r, db, pub, cfg)
}
