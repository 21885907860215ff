package services

import (
	"github.com/mustfaashraf/ecommerce-api/models"
	"github.com/mustfaashraf/ecommerce-api/store"
)

// fakeStore is an in-memory Store for service tests. Transact snapshots
// state first and restores it when the callback fails, mirroring the
// rollback behavior of the gorm implementation.
type fakeStore struct {
	products map[uint]models.Product
	users    map[string]models.User
	carts    map[string]*models.Cart // keyed by user ID
	coupons  map[uint]models.Coupon
	orders   []*models.Order

	nextItemID  uint
	nextCartID  uint
	nextOrderID uint

	// when set, the named operations fail with this error
	cartErr    error
	productErr error
	couponErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[uint]models.Product{},
		users:    map[string]models.User{},
		carts:    map[string]*models.Cart{},
		coupons:  map[uint]models.Coupon{},
	}
}

var _ store.Store = (*fakeStore)(nil)

func (f *fakeStore) addProduct(p models.Product) {
	f.products[p.ID] = p
}

func (f *fakeStore) addUser(u models.User) {
	f.users[u.ID] = u
}

func (f *fakeStore) addCoupon(c models.Coupon) {
	f.coupons[c.ID] = c
}

// seedCart installs a cart for userID with one line per (productID, qty) pair.
func (f *fakeStore) seedCart(userID string, couponID *uint, lines map[uint]int) *models.Cart {
	cart, _ := f.EnsureCart(userID)
	for productID, qty := range lines {
		f.nextItemID++
		cart.Items = append(cart.Items, models.CartItem{
			ID:        f.nextItemID,
			CartID:    cart.CartID,
			ProductID: productID,
			Quantity:  qty,
		})
	}
	cart.CouponID = couponID
	return cart
}

func (f *fakeStore) ProductByID(id uint) (*models.Product, error) {
	if f.productErr != nil {
		return nil, f.productErr
	}
	p, ok := f.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) ProductsByIDs(ids []uint) (map[uint]models.Product, error) {
	if f.productErr != nil {
		return nil, f.productErr
	}
	byID := map[uint]models.Product{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			byID[id] = p
		}
	}
	return byID, nil
}

func (f *fakeStore) UserByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (f *fakeStore) CartByUser(userID string) (*models.Cart, error) {
	if f.cartErr != nil {
		return nil, f.cartErr
	}
	cart, ok := f.carts[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	view := *cart
	view.Items = append([]models.CartItem(nil), cart.Items...)
	if cart.CouponID != nil {
		if c, ok := f.coupons[*cart.CouponID]; ok {
			view.Coupon = &c
		}
	}
	return &view, nil
}

func (f *fakeStore) EnsureCart(userID string) (*models.Cart, error) {
	if f.cartErr != nil {
		return nil, f.cartErr
	}
	if cart, ok := f.carts[userID]; ok {
		return cart, nil
	}
	f.nextCartID++
	cart := &models.Cart{CartID: f.nextCartID, UserID: userID}
	f.carts[userID] = cart
	return cart, nil
}

func (f *fakeStore) cartByID(cartID uint) *models.Cart {
	for _, cart := range f.carts {
		if cart.CartID == cartID {
			return cart
		}
	}
	return nil
}

func (f *fakeStore) CartItem(cartID, productID uint) (*models.CartItem, error) {
	cart := f.cartByID(cartID)
	if cart == nil {
		return nil, store.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			item := cart.Items[i]
			return &item, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) CreateCartItem(item *models.CartItem) error {
	cart := f.cartByID(item.CartID)
	if cart == nil {
		return store.ErrNotFound
	}
	f.nextItemID++
	item.ID = f.nextItemID
	cart.Items = append(cart.Items, *item)
	return nil
}

func (f *fakeStore) UpdateCartItemQuantity(itemID uint, quantity int) error {
	for _, cart := range f.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items[i].Quantity = quantity
				return nil
			}
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteCartItem(cartID, productID uint) error {
	cart := f.cartByID(cartID)
	if cart == nil {
		return store.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) ClearCartItems(cartID uint) error {
	if cart := f.cartByID(cartID); cart != nil {
		cart.Items = nil
	}
	return nil
}

func (f *fakeStore) SetCartCoupon(cartID uint, couponID *uint) error {
	cart := f.cartByID(cartID)
	if cart == nil {
		return store.ErrNotFound
	}
	cart.CouponID = couponID
	return nil
}

func (f *fakeStore) CouponByID(id uint) (*models.Coupon, error) {
	if f.couponErr != nil {
		return nil, f.couponErr
	}
	c, ok := f.coupons[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (f *fakeStore) CouponByCode(code string) (*models.Coupon, error) {
	if f.couponErr != nil {
		return nil, f.couponErr
	}
	for _, c := range f.coupons {
		if c.Code == code {
			coupon := c
			return &coupon, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) CreateOrder(order *models.Order) error {
	f.nextOrderID++
	order.ID = f.nextOrderID
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeStore) DecrementStock(productID uint, qty int) (bool, error) {
	p, ok := f.products[productID]
	if !ok || p.Quantity < qty {
		return false, nil
	}
	p.Quantity -= qty
	p.Sold += qty
	f.products[productID] = p
	return true, nil
}

func (f *fakeStore) Transact(fn func(store.Store) error) error {
	snapshot := f.clone()
	if err := fn(f); err != nil {
		f.restore(snapshot)
		return err
	}
	return nil
}

func (f *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, p := range f.products {
		c.products[id] = p
	}
	for id, u := range f.users {
		c.users[id] = u
	}
	for id, cp := range f.coupons {
		c.coupons[id] = cp
	}
	for userID, cart := range f.carts {
		copied := *cart
		copied.Items = append([]models.CartItem(nil), cart.Items...)
		c.carts[userID] = &copied
	}
	c.orders = append([]*models.Order(nil), f.orders...)
	c.nextItemID = f.nextItemID
	c.nextCartID = f.nextCartID
	c.nextOrderID = f.nextOrderID
	return c
}

func (f *fakeStore) restore(snapshot *fakeStore) {
	f.products = snapshot.products
	f.users = snapshot.users
	f.coupons = snapshot.coupons
	f.carts = snapshot.carts
	f.orders = snapshot.orders
	f.nextItemID = snapshot.nextItemID
	f.nextCartID = snapshot.nextCartID
	f.nextOrderID = snapshot.nextOrderID
}
