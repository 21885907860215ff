package services

import (
	"errors"
	"fmt"
)

var (
	// ErrCartEmpty aborts checkout before any side effect: the user has no
	// cart, the cart has no items, or every item references a deleted product.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrInvalidQuantity rejects non-positive quantities before the store
	// is touched.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrProductNotFound rejects adding a product that does not exist.
	ErrProductNotFound = errors.New("product not found")
)

// StockConflictError aborts the whole order when any line requests more
// units than are in stock. Partial orders are never created.
type StockConflictError struct {
	ProductID uint
	Name      string
	Requested int
	Available int
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q (id %d): requested %d, available %d",
		e.Name, e.ProductID, e.Requested, e.Available)
}
