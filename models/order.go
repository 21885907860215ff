package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

type PaymentMethod string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by seller
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before delivery

	// Payment methods; a stored label only, no gateway behind it
	PaymentMethodCOD  PaymentMethod = "cod"
	PaymentMethodCard PaymentMethod = "card"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a raw string onto the status enum. Any enum value
// may be set regardless of the order's current state.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// ParsePaymentMethod maps a raw string onto the payment method label,
// defaulting to cash-on-delivery when blank.
func ParsePaymentMethod(method string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "":
		return PaymentMethodCOD, nil
	case string(PaymentMethodCOD):
		return PaymentMethodCOD, nil
	case string(PaymentMethodCard):
		return PaymentMethodCard, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	OrderRef        string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID          string        `gorm:"not null;index" json:"user_id"`
	User            *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress Address       `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	Subtotal        float64       `json:"subtotal"`
	ShippingCost    float64       `json:"shipping_cost"`
	Discount        float64       `json:"discount"`
	TotalPrice      float64       `json:"total_price"`
	PaymentMethod   PaymentMethod `gorm:"type:VARCHAR(10);default:'cod'" json:"payment_method"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem is an immutable snapshot taken at checkout. ProductID is a
// historical reference only; the live product may change or disappear
// without affecting the order.
type OrderItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	OrderID         uint    `gorm:"index" json:"-"`
	ProductID       uint    `json:"product_id"`
	Name            string  `json:"name"` // product name at time of purchase
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}
