package services

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mustfaashraf/ecommerce-api/models"
	"github.com/mustfaashraf/ecommerce-api/store"
)

// PricedCart is the cart view consumed by both the cart page and the
// pre-checkout summary. It is never nil; absence and store failures both
// degrade to the empty sentinel so rendering is never blocked.
type PricedCart struct {
	Items       []PricedItem   `json:"items"`
	Coupon      *models.Coupon `json:"coupon,omitempty"`
	Calculation Calculation    `json:"calculation"`
}

func emptyPricedCart() PricedCart {
	return PricedCart{Items: []PricedItem{}}
}

// CartService owns cart reads and mutations.
type CartService struct {
	Store store.Store
	Now   func() time.Time
}

func NewCartService(s store.Store) *CartService {
	return &CartService{Store: s, Now: time.Now}
}

// PricedCart loads the user's cart and derives its pricing. Items whose
// product has since been deleted are silently dropped; the cart is
// self-healing, not an error source.
func (s *CartService) PricedCart(userID string) PricedCart {
	cart, err := s.Store.CartByUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		return emptyPricedCart()
	}
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("cart fetch failed, serving empty cart")
		return emptyPricedCart()
	}

	ids := make([]uint, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.Store.ProductsByIDs(ids)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("product resolution failed, serving empty cart")
		return emptyPricedCart()
	}

	priced := emptyPricedCart()
	for _, item := range cart.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue // product deleted since it was added
		}
		priced.Items = append(priced.Items, PricedItem{
			Product:   product,
			Quantity:  item.Quantity,
			LineTotal: product.Price * float64(item.Quantity),
		})
	}

	// A stale coupon stays attached to the cart record but contributes no
	// discount; Calculate re-checks activity and expiry.
	priced.Coupon = s.cartCoupon(cart)
	priced.Calculation = Calculate(priced.Items, priced.Coupon, s.Now())
	return priced
}

func (s *CartService) cartCoupon(cart *models.Cart) *models.Coupon {
	if cart.Coupon != nil {
		return cart.Coupon
	}
	if cart.CouponID == nil {
		return nil
	}
	coupon, err := s.Store.CouponByID(*cart.CouponID)
	if err != nil {
		return nil
	}
	return coupon
}

// AddItem puts a product into the user's cart, creating the cart if the
// user has none yet. Adding a product already in the cart raises its
// quantity by the requested amount.
func (s *CartService) AddItem(userID string, productID uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if _, err := s.Store.ProductByID(productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	cart, err := s.Store.EnsureCart(userID)
	if err != nil {
		return err
	}

	item, err := s.Store.CartItem(cart.CartID, productID)
	if errors.Is(err, store.ErrNotFound) {
		return s.Store.CreateCartItem(&models.CartItem{
			CartID:    cart.CartID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   s.Now(),
		})
	}
	if err != nil {
		return err
	}
	return s.Store.UpdateCartItemQuantity(item.ID, item.Quantity+quantity)
}

// IncreaseItem bumps an existing line's quantity by one. A missing cart or
// line is tolerated silently.
func (s *CartService) IncreaseItem(userID string, productID uint) error {
	item, err := s.findItem(userID, productID)
	if err != nil || item == nil {
		return err
	}
	return s.Store.UpdateCartItemQuantity(item.ID, item.Quantity+1)
}

// DecreaseItem lowers an existing line's quantity by one, flooring at 1.
// Decrease never removes a line; that is what RemoveItem is for.
func (s *CartService) DecreaseItem(userID string, productID uint) error {
	item, err := s.findItem(userID, productID)
	if err != nil || item == nil {
		return err
	}
	if item.Quantity <= 1 {
		return nil
	}
	return s.Store.UpdateCartItemQuantity(item.ID, item.Quantity-1)
}

// RemoveItem drops a line from the cart. Removing a line that is not there
// is not an error.
func (s *CartService) RemoveItem(userID string, productID uint) error {
	cart, err := s.Store.CartByUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.Store.DeleteCartItem(cart.CartID, productID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func (s *CartService) findItem(userID string, productID uint) (*models.CartItem, error) {
	cart, err := s.Store.CartByUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	item, err := s.Store.CartItem(cart.CartID, productID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}
