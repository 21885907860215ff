package models

import (
	"strings"
	"time"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Coupon struct {
	ID            uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Code          string       `gorm:"unique;not null" json:"code"` // stored upper-cased
	DiscountType  DiscountType `gorm:"type:VARCHAR(20);not null" json:"discount_type"`
	DiscountValue float64      `gorm:"not null" json:"discount_value"`
	ExpiresAt     time.Time    `gorm:"not null" json:"expires_at"`
	IsActive      bool         `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Usable reports whether the coupon may contribute a discount at the given
// instant. Expired or deactivated coupons are silently worth nothing.
func (c Coupon) Usable(now time.Time) bool {
	return c.IsActive && c.ExpiresAt.After(now)
}

// NormalizeCouponCode maps user input onto the stored code form.
// Codes are upper-cased at creation, so lookups normalize the same way.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
