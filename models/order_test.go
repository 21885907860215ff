package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "shipped", "delivered", "cancelled"} {
		status, err := ParseOrderStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, OrderStatus(raw), status)
	}

	t.Run("case and whitespace tolerant", func(t *testing.T) {
		status, err := ParseOrderStatus("  Shipped ")
		require.NoError(t, err)
		assert.Equal(t, OrderStatusShipped, status)
	})

	t.Run("unknown value rejected", func(t *testing.T) {
		_, err := ParseOrderStatus("teleported")
		assert.ErrorIs(t, err, ErrInvalidOrderStatus)
	})
}

func TestParsePaymentMethod(t *testing.T) {
	t.Run("blank defaults to cod", func(t *testing.T) {
		method, err := ParsePaymentMethod("")
		require.NoError(t, err)
		assert.Equal(t, PaymentMethodCOD, method)
	})

	t.Run("card accepted", func(t *testing.T) {
		method, err := ParsePaymentMethod("Card")
		require.NoError(t, err)
		assert.Equal(t, PaymentMethodCard, method)
	})

	t.Run("unknown rejected", func(t *testing.T) {
		_, err := ParsePaymentMethod("cheque")
		assert.Error(t, err)
	})
}

func TestCouponUsable(t *testing.T) {
	now := time.Now()
	c := Coupon{IsActive: true, ExpiresAt: now.Add(time.Hour)}
	assert.True(t, c.Usable(now))

	c.IsActive = false
	assert.False(t, c.Usable(now))

	c.IsActive = true
	c.ExpiresAt = now.Add(-time.Second)
	assert.False(t, c.Usable(now))
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizeCouponCode("  save10 "))
	assert.Equal(t, "", NormalizeCouponCode("   "))
}
