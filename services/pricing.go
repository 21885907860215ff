package services

import (
	"time"

	"github.com/mustfaashraf/ecommerce-api/models"
)

// ShippingFlatFee is charged on every non-empty cart.
const ShippingFlatFee = 100.0

// Calculation is the derived pricing of a cart. Total always equals
// Subtotal + Shipping - Discount, and Discount never exceeds Subtotal.
type Calculation struct {
	Subtotal  float64 `json:"subtotal"`
	CartCount int     `json:"cart_count"`
	Shipping  float64 `json:"shipping"`
	Discount  float64 `json:"discount"`
	Total     float64 `json:"total"`
}

// PricedItem is a cart line with its product resolved and line total computed.
type PricedItem struct {
	Product   models.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	LineTotal float64        `json:"line_total"`
}

// CouponDiscount computes the discount a coupon grants against a subtotal,
// clamped to [0, subtotal] so totals never go negative. Callers check
// Usable themselves; a stale coupon should never reach this point.
func CouponDiscount(c models.Coupon, subtotal float64) float64 {
	var discount float64
	switch c.DiscountType {
	case models.DiscountPercentage:
		discount = subtotal * c.DiscountValue / 100
	case models.DiscountFixed:
		discount = c.DiscountValue
	}
	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

// Calculate derives the full pricing for a set of resolved cart lines.
// An expired or deactivated coupon contributes nothing.
func Calculate(items []PricedItem, coupon *models.Coupon, now time.Time) Calculation {
	var calc Calculation
	for _, item := range items {
		calc.Subtotal += item.LineTotal
		calc.CartCount += item.Quantity
	}
	if len(items) > 0 {
		calc.Shipping = ShippingFlatFee
	}
	if coupon != nil && coupon.Usable(now) {
		calc.Discount = CouponDiscount(*coupon, calc.Subtotal)
	}
	calc.Total = calc.Subtotal + calc.Shipping - calc.Discount
	return calc
}
