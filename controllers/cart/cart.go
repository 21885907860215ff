package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mustfaashraf/ecommerce-api/middleware"
	"github.com/mustfaashraf/ecommerce-api/services"
	"github.com/mustfaashraf/ecommerce-api/store"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type ApplyCouponInput struct {
	Code string `json:"code"`
}

// GET /user/cart
// The priced view is also what the checkout page renders; it never fails,
// degrading to an empty cart on store trouble.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewCartService(store.NewGorm(db))
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, svc.PricedCart(userID))
	}
}

// POST /user/cart/items
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewCartService(store.NewGorm(db))
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		switch err := svc.AddItem(userID, input.ProductID, input.Quantity); {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		default:
			c.JSON(http.StatusOK, svc.PricedCart(userID))
		}
	}
}

// POST /user/cart/items/:product_id/increase
func IncreaseQuantity(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewCartService(store.NewGorm(db))
	return itemMutation(svc, svc.IncreaseItem)
}

// POST /user/cart/items/:product_id/decrease
// Decrease floors at quantity 1; it never removes the line.
func DecreaseQuantity(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewCartService(store.NewGorm(db))
	return itemMutation(svc, svc.DecreaseItem)
}

// DELETE /user/cart/items/:product_id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewCartService(store.NewGorm(db))
	return itemMutation(svc, svc.RemoveItem)
}

func itemMutation(svc *services.CartService, mutate func(userID string, productID uint) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		if err := mutate(userID, uint(productID)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, svc.PricedCart(userID))
	}
}

// POST /user/cart/coupon
// A blank code removes the attached coupon; an unknown, expired, or
// inactive code reports invalid without touching the cart.
func ApplyCoupon(db *gorm.DB) gin.HandlerFunc {
	gormStore := store.NewGorm(db)
	resolver := services.NewCouponResolver(gormStore)
	svc := services.NewCartService(gormStore)
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input ApplyCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status := resolver.Apply(userID, input.Code)
		code := http.StatusOK
		if status == services.CouponErrored {
			code = http.StatusInternalServerError
		}
		c.JSON(code, gin.H{"coupon": status, "cart": svc.PricedCart(userID)})
	}
}

// GET /admin/user-cart/:user_id
func GetUserCartForAdmin(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewCartService(store.NewGorm(db))
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		c.JSON(http.StatusOK, svc.PricedCart(userID))
	}
}
