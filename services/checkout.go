package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mustfaashraf/ecommerce-api/models"
	"github.com/mustfaashraf/ecommerce-api/store"
)

// PlaceOrderInput carries the optional checkout overrides. Prices and
// discounts are never taken from the client.
type PlaceOrderInput struct {
	ShippingAddress *models.Address
	PaymentMethod   string
}

// CheckoutEngine turns a cart into an immutable order. Order creation,
// stock decrement, and cart clearing run inside one store transaction, so
// a stock conflict on any line rolls the whole order back.
type CheckoutEngine struct {
	Store store.Store
	Now   func() time.Time
}

func NewCheckoutEngine(s store.Store) *CheckoutEngine {
	return &CheckoutEngine{Store: s, Now: time.Now}
}

func (e *CheckoutEngine) PlaceOrder(userID string, input PlaceOrderInput) (*models.Order, error) {
	cart, err := e.Store.CartByUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCartEmpty
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	method, err := models.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := e.Store.ProductsByIDs(ids)
	if err != nil {
		return nil, err
	}

	// Snapshot lines from current product state. Items whose product is
	// gone are skipped, matching the cart view's self-healing policy; a
	// line over stock aborts the entire order.
	var lines []models.OrderItem
	var subtotal float64
	for _, item := range cart.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		if item.Quantity > product.Quantity {
			return nil, &StockConflictError{
				ProductID: product.ID,
				Name:      product.Name,
				Requested: item.Quantity,
				Available: product.Quantity,
			}
		}
		lines = append(lines, models.OrderItem{
			ProductID:       product.ID,
			Name:            product.Name,
			Quantity:        item.Quantity,
			PriceAtPurchase: product.Price,
		})
		subtotal += product.Price * float64(item.Quantity)
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	// Discount is re-derived against the fresh subtotal; numbers computed
	// earlier for the cart page are never trusted here.
	var discount float64
	if cart.CouponID != nil {
		coupon, err := e.Store.CouponByID(*cart.CouponID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			// coupon deleted since it was attached; worth nothing
		case err != nil:
			return nil, err
		case coupon.Usable(e.Now()):
			discount = CouponDiscount(*coupon, subtotal)
		}
	}

	address, err := e.shippingAddress(userID, input.ShippingAddress)
	if err != nil {
		return nil, err
	}

	now := e.Now()
	order := &models.Order{
		OrderRef:        newOrderRef(now),
		UserID:          userID,
		Items:           lines,
		ShippingAddress: address,
		Subtotal:        subtotal,
		ShippingCost:    ShippingFlatFee,
		Discount:        discount,
		TotalPrice:      subtotal + ShippingFlatFee - discount,
		PaymentMethod:   method,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
	}

	err = e.Store.Transact(func(tx store.Store) error {
		if err := tx.CreateOrder(order); err != nil {
			return err
		}
		for _, line := range order.Items {
			ok, err := tx.DecrementStock(line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// stock moved between the check above and here
				return &StockConflictError{
					ProductID: line.ProductID,
					Name:      line.Name,
					Requested: line.Quantity,
					Available: products[line.ProductID].Quantity,
				}
			}
		}
		return tx.ClearCartItems(cart.CartID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// shippingAddress prefers the address supplied with the checkout request;
// an absent or incomplete one falls back to the user's profile address.
func (e *CheckoutEngine) shippingAddress(userID string, override *models.Address) (models.Address, error) {
	if override != nil && override.Complete() {
		return *override, nil
	}
	user, err := e.Store.UserByID(userID)
	if err != nil {
		return models.Address{}, err
	}
	return user.Address, nil
}

func newOrderRef(now time.Time) string {
	return now.Format("20060102150405") + "-" + uuid.NewString()
}
