package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mustfaashraf/ecommerce-api/models"
)

func pricedItem(id uint, price float64, qty int) PricedItem {
	return PricedItem{
		Product:   models.Product{ID: id, Price: price},
		Quantity:  qty,
		LineTotal: price * float64(qty),
	}
}

func activeCoupon(t models.DiscountType, value float64) *models.Coupon {
	return &models.Coupon{
		ID:            1,
		Code:          "SAVE",
		DiscountType:  t,
		DiscountValue: value,
		ExpiresAt:     time.Now().Add(24 * time.Hour),
		IsActive:      true,
	}
}

func TestCouponDiscount(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		c := activeCoupon(models.DiscountPercentage, 10)
		assert.Equal(t, 20.0, CouponDiscount(*c, 200))
	})

	t.Run("fixed capped at subtotal", func(t *testing.T) {
		c := activeCoupon(models.DiscountFixed, 50)
		assert.Equal(t, 30.0, CouponDiscount(*c, 30))
	})

	t.Run("fixed below subtotal", func(t *testing.T) {
		c := activeCoupon(models.DiscountFixed, 50)
		assert.Equal(t, 50.0, CouponDiscount(*c, 120))
	})

	t.Run("negative value clamps to zero", func(t *testing.T) {
		c := activeCoupon(models.DiscountFixed, -10)
		assert.Equal(t, 0.0, CouponDiscount(*c, 100))
	})
}

func TestCalculate(t *testing.T) {
	now := time.Now()

	t.Run("totals add up", func(t *testing.T) {
		items := []PricedItem{pricedItem(1, 100, 2), pricedItem(2, 40, 3)}
		calc := Calculate(items, activeCoupon(models.DiscountPercentage, 10), now)

		assert.Equal(t, 320.0, calc.Subtotal)
		assert.Equal(t, 5, calc.CartCount)
		assert.Equal(t, ShippingFlatFee, calc.Shipping)
		assert.Equal(t, 32.0, calc.Discount)
		assert.Equal(t, calc.Subtotal+calc.Shipping-calc.Discount, calc.Total)
	})

	t.Run("empty cart has no shipping and no discount", func(t *testing.T) {
		calc := Calculate(nil, activeCoupon(models.DiscountFixed, 50), now)
		assert.Equal(t, Calculation{}, calc)
	})

	t.Run("expired coupon contributes nothing", func(t *testing.T) {
		c := activeCoupon(models.DiscountPercentage, 50)
		c.ExpiresAt = now.Add(-time.Hour)
		calc := Calculate([]PricedItem{pricedItem(1, 100, 1)}, c, now)
		assert.Equal(t, 0.0, calc.Discount)
		assert.Equal(t, 200.0, calc.Total)
	})

	t.Run("inactive coupon contributes nothing", func(t *testing.T) {
		c := activeCoupon(models.DiscountPercentage, 50)
		c.IsActive = false
		calc := Calculate([]PricedItem{pricedItem(1, 100, 1)}, c, now)
		assert.Equal(t, 0.0, calc.Discount)
	})

	t.Run("discount never exceeds subtotal", func(t *testing.T) {
		c := activeCoupon(models.DiscountFixed, 10000)
		calc := Calculate([]PricedItem{pricedItem(1, 30, 1)}, c, now)
		assert.Equal(t, 30.0, calc.Discount)
		assert.Equal(t, ShippingFlatFee, calc.Total)
	})
}
