package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustfaashraf/ecommerce-api/models"
)

func newCartService(f *fakeStore) *CartService {
	return &CartService{Store: f, Now: time.Now}
}

func TestPricedCartSentinel(t *testing.T) {
	t.Run("no cart yet", func(t *testing.T) {
		s := newCartService(newFakeStore())
		priced := s.PricedCart("u1")

		assert.Empty(t, priced.Items)
		assert.Equal(t, Calculation{}, priced.Calculation)
	})

	t.Run("store failure degrades to empty cart", func(t *testing.T) {
		f := newFakeStore()
		f.cartErr = errors.New("connection refused")
		priced := newCartService(f).PricedCart("u1")

		assert.Empty(t, priced.Items)
		assert.Equal(t, Calculation{}, priced.Calculation)
	})
}

func TestPricedCartDropsDanglingItems(t *testing.T) {
	f := newFakeStore()
	f.addProduct(models.Product{ID: 1, Name: "lamp", Price: 100, Quantity: 5})
	f.seedCart("u1", nil, map[uint]int{1: 2, 99: 4}) // product 99 was deleted

	priced := newCartService(f).PricedCart("u1")

	require.Len(t, priced.Items, 1)
	assert.Equal(t, uint(1), priced.Items[0].Product.ID)
	assert.Equal(t, 200.0, priced.Calculation.Subtotal)
	assert.Equal(t, 2, priced.Calculation.CartCount)
	assert.Equal(t, ShippingFlatFee, priced.Calculation.Shipping)
	assert.Equal(t, 300.0, priced.Calculation.Total)
}

func TestPricedCartAttachedExpiredCoupon(t *testing.T) {
	f := newFakeStore()
	f.addProduct(models.Product{ID: 1, Price: 100, Quantity: 5})
	f.addCoupon(models.Coupon{
		ID: 7, Code: "OLD", DiscountType: models.DiscountPercentage,
		DiscountValue: 50, ExpiresAt: time.Now().Add(-time.Hour), IsActive: true,
	})
	couponID := uint(7)
	f.seedCart("u1", &couponID, map[uint]int{1: 1})

	priced := newCartService(f).PricedCart("u1")

	// Stale coupons are ignored, not detached.
	assert.Equal(t, 0.0, priced.Calculation.Discount)
	assert.Equal(t, 200.0, priced.Calculation.Total)
}

func TestAddItem(t *testing.T) {
	f := newFakeStore()
	f.addProduct(models.Product{ID: 1, Price: 50, Quantity: 10})
	s := newCartService(f)

	t.Run("creates cart on first add", func(t *testing.T) {
		require.NoError(t, s.AddItem("u1", 1, 2))
		priced := s.PricedCart("u1")
		require.Len(t, priced.Items, 1)
		assert.Equal(t, 2, priced.Items[0].Quantity)
	})

	t.Run("existing line accumulates", func(t *testing.T) {
		require.NoError(t, s.AddItem("u1", 1, 3))
		priced := s.PricedCart("u1")
		require.Len(t, priced.Items, 1)
		assert.Equal(t, 5, priced.Items[0].Quantity)
	})

	t.Run("unknown product rejected", func(t *testing.T) {
		assert.ErrorIs(t, s.AddItem("u1", 404, 1), ErrProductNotFound)
	})

	t.Run("non-positive quantity rejected before store access", func(t *testing.T) {
		assert.ErrorIs(t, s.AddItem("u1", 1, 0), ErrInvalidQuantity)
	})
}

func TestIncreaseDecrease(t *testing.T) {
	f := newFakeStore()
	f.addProduct(models.Product{ID: 1, Price: 50, Quantity: 10})
	f.seedCart("u1", nil, map[uint]int{1: 1})
	s := newCartService(f)

	t.Run("decrease floors at one", func(t *testing.T) {
		require.NoError(t, s.DecreaseItem("u1", 1))
		priced := s.PricedCart("u1")
		require.Len(t, priced.Items, 1, "decrease must never remove the line")
		assert.Equal(t, 1, priced.Items[0].Quantity)
	})

	t.Run("increase bumps by one", func(t *testing.T) {
		require.NoError(t, s.IncreaseItem("u1", 1))
		assert.Equal(t, 2, s.PricedCart("u1").Items[0].Quantity)
	})

	t.Run("decrease lowers by one", func(t *testing.T) {
		require.NoError(t, s.DecreaseItem("u1", 1))
		assert.Equal(t, 1, s.PricedCart("u1").Items[0].Quantity)
	})

	t.Run("missing line is tolerated", func(t *testing.T) {
		assert.NoError(t, s.IncreaseItem("u1", 404))
		assert.NoError(t, s.DecreaseItem("nobody", 1))
	})
}

func TestRemoveItem(t *testing.T) {
	f := newFakeStore()
	f.addProduct(models.Product{ID: 1, Price: 80, Quantity: 10})
	f.addCoupon(models.Coupon{
		ID: 3, Code: "SAVE10", DiscountType: models.DiscountPercentage,
		DiscountValue: 10, ExpiresAt: time.Now().Add(time.Hour), IsActive: true,
	})
	couponID := uint(3)
	f.seedCart("u1", &couponID, map[uint]int{1: 1})
	s := newCartService(f)

	require.NoError(t, s.RemoveItem("u1", 1))

	priced := s.PricedCart("u1")
	assert.Empty(t, priced.Items)
	// Emptying the cart zeroes shipping and discount even with a live coupon attached.
	assert.Equal(t, 0.0, priced.Calculation.Shipping)
	assert.Equal(t, 0.0, priced.Calculation.Discount)
	assert.Equal(t, 0.0, priced.Calculation.Total)

	t.Run("removing a missing line is not an error", func(t *testing.T) {
		assert.NoError(t, s.RemoveItem("u1", 1))
		assert.NoError(t, s.RemoveItem("nobody", 1))
	})
}
