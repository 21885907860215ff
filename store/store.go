package store

import (
	"errors"

	"github.com/mustfaashraf/ecommerce-api/models"
)

// ErrNotFound is returned for single-entity lookups that match nothing.
var ErrNotFound = errors.New("record not found")

// Store is the persistence surface consumed by the service layer. The gorm
// implementation backs production; tests substitute in-memory fakes.
type Store interface {
	ProductByID(id uint) (*models.Product, error)
	ProductsByIDs(ids []uint) (map[uint]models.Product, error)

	UserByID(id string) (*models.User, error)

	// CartByUser returns the cart with items and coupon loaded, or
	// ErrNotFound when the user has no cart yet.
	CartByUser(userID string) (*models.Cart, error)
	// EnsureCart returns the user's cart, creating an empty one if absent.
	EnsureCart(userID string) (*models.Cart, error)
	CartItem(cartID, productID uint) (*models.CartItem, error)
	CreateCartItem(item *models.CartItem) error
	UpdateCartItemQuantity(itemID uint, quantity int) error
	DeleteCartItem(cartID, productID uint) error
	ClearCartItems(cartID uint) error
	SetCartCoupon(cartID uint, couponID *uint) error

	CouponByID(id uint) (*models.Coupon, error)
	CouponByCode(code string) (*models.Coupon, error)

	CreateOrder(order *models.Order) error

	// DecrementStock subtracts qty from the product's stock as a single
	// conditional update. It reports false when available stock is below
	// qty; the row is then left untouched.
	DecrementStock(productID uint, qty int) (bool, error)

	// Transact runs fn against a transactional view of the store. Any
	// error from fn rolls the whole transaction back.
	Transact(fn func(Store) error) error
}
