package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mustfaashraf/ecommerce-api/events"
	"github.com/mustfaashraf/ecommerce-api/middleware"
	"github.com/mustfaashraf/ecommerce-api/models"
	"github.com/mustfaashraf/ecommerce-api/services"
	"github.com/mustfaashraf/ecommerce-api/store"
)

type CheckoutInput struct {
	ShippingAddress *models.Address `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// orderLookup maps a path value onto the column it addresses. Numeric
// values are primary keys; anything else, including every generated
// order reference, matches the order_ref column. The value must be bound
// with its column's type or Postgres rejects the parameter outright.
func orderLookup(raw string) (string, interface{}) {
	if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return "id = ?", id
	}
	return "order_ref = ?", raw
}

// POST /user/checkout
// On a stock conflict the caller is sent back to the cart with the
// offending product identified; nothing is committed.
func PlaceOrderHandler(db *gorm.DB, pub *events.Publisher) gin.HandlerFunc {
	engine := services.NewCheckoutEngine(store.NewGorm(db))
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CheckoutInput
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
		}

		order, err := engine.PlaceOrder(userID, services.PlaceOrderInput{
			ShippingAddress: input.ShippingAddress,
			PaymentMethod:   input.PaymentMethod,
		})

		var conflict *services.StockConflictError
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			middleware.RecordCheckout("cart_empty")
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_empty"})
		case errors.As(err, &conflict):
			middleware.RecordCheckout("out_of_stock")
			c.JSON(http.StatusConflict, gin.H{
				"error":        "out_of_stock",
				"product_id":   conflict.ProductID,
				"product_name": conflict.Name,
				"requested":    conflict.Requested,
				"available":    conflict.Available,
			})
		case err != nil:
			middleware.RecordCheckout("error")
			logrus.WithError(err).WithField("user_id", userID).Error("checkout failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			middleware.RecordCheckout("placed")
			pub.OrderPlaced(order)
			broadcastNewOrder(*order)
			c.JSON(http.StatusCreated, order)
		}
	}
}

// GET /user/orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:orderID
// Direct single-entity lookup: absence is a hard 404, including orders
// that belong to someone else.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		cond, value := orderLookup(c.Param("orderID"))
		query := db.Preload("Items").Where(cond, value)
		if middleware.UserRole(c) != string(models.RoleAdmin) {
			query = query.Where("user_id = ?", userID)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
// Admins see everything; vendors only orders containing their own products.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("User").Preload("Items").Order("created_at DESC")

		if middleware.UserRole(c) == string(models.RoleOwner) {
			userID, _ := middleware.UserID(c)
			query = query.Where("id IN (?)",
				db.Table("order_items").Select("order_id").Where("product_id IN (?)",
					db.Table("products").Select("id").Where("owner_id = ?", userID)))
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
			return
		}

		cond, value := orderLookup(c.Param("orderID"))
		var order models.Order
		if err := db.Where(cond, value).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if err := db.Model(&order).Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		pub.OrderStatusChanged(order.ID, status)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "status": status})
	}
}

// DELETE /admin/orders/:orderID
// Deleting an order does not restock its products.
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cond, value := orderLookup(c.Param("orderID"))
		err := db.Transaction(func(tx *gorm.DB) error {
			var order models.Order
			if err := tx.Where(cond, value).First(&order).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}
