package services

import (
	"errors"
	"time"

	"github.com/mustfaashraf/ecommerce-api/models"
	"github.com/mustfaashraf/ecommerce-api/store"
)

// CouponStatus is the machine-readable outcome of an apply-coupon request.
type CouponStatus string

const (
	CouponValid   CouponStatus = "valid"
	CouponInvalid CouponStatus = "invalid"
	CouponRemoved CouponStatus = "removed"
	CouponErrored CouponStatus = "error"
)

// CouponResolver validates coupon codes and computes their discounts.
type CouponResolver struct {
	Store store.Store
	Now   func() time.Time
}

func NewCouponResolver(s store.Store) *CouponResolver {
	return &CouponResolver{Store: s, Now: time.Now}
}

// Resolve looks a code up and returns the coupon with its discount against
// the given subtotal. An unknown, deactivated, or expired code yields a nil
// coupon and zero discount; only store failures surface as errors.
func (r *CouponResolver) Resolve(code string, subtotal float64) (*models.Coupon, float64, error) {
	normalized := models.NormalizeCouponCode(code)
	if normalized == "" {
		return nil, 0, nil
	}
	coupon, err := r.Store.CouponByCode(normalized)
	if errors.Is(err, store.ErrNotFound) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	if !coupon.Usable(r.Now()) {
		return nil, 0, nil
	}
	return coupon, CouponDiscount(*coupon, subtotal), nil
}

// Apply attaches the coupon named by code to the user's cart. A blank code
// is the explicit remove-coupon operation, distinct from an invalid code.
func (r *CouponResolver) Apply(userID, code string) CouponStatus {
	if models.NormalizeCouponCode(code) == "" {
		return r.remove(userID)
	}

	coupon, _, err := r.Resolve(code, 0)
	if err != nil {
		return CouponErrored
	}
	if coupon == nil {
		return CouponInvalid
	}

	cart, err := r.Store.EnsureCart(userID)
	if err != nil {
		return CouponErrored
	}
	if err := r.Store.SetCartCoupon(cart.CartID, &coupon.ID); err != nil {
		return CouponErrored
	}
	return CouponValid
}

func (r *CouponResolver) remove(userID string) CouponStatus {
	cart, err := r.Store.CartByUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		return CouponRemoved // nothing to clear
	}
	if err != nil {
		return CouponErrored
	}
	if err := r.Store.SetCartCoupon(cart.CartID, nil); err != nil {
		return CouponErrored
	}
	return CouponRemoved
}
