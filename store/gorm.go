package store

import (
	"errors"

	"github.com/mustfaashraf/ecommerce-api/models"
	"gorm.io/gorm"
)

// Gorm is the PostgreSQL-backed Store.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

var _ Store = (*Gorm)(nil)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (g *Gorm) ProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := g.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (g *Gorm) ProductsByIDs(ids []uint) (map[uint]models.Product, error) {
	if len(ids) == 0 {
		return map[uint]models.Product{}, nil
	}
	var products []models.Product
	if err := g.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

func (g *Gorm) UserByID(id string) (*models.User, error) {
	var user models.User
	if err := g.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (g *Gorm) CartByUser(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := g.db.Preload("Items").Preload("Coupon").
		Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		return nil, translate(err)
	}
	return &cart, nil
}

func (g *Gorm) EnsureCart(userID string) (*models.Cart, error) {
	cart, err := g.CartByUser(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	fresh := models.Cart{UserID: userID}
	if err := g.db.Create(&fresh).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

func (g *Gorm) CartItem(cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := g.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (g *Gorm) CreateCartItem(item *models.CartItem) error {
	return g.db.Create(item).Error
}

func (g *Gorm) UpdateCartItemQuantity(itemID uint, quantity int) error {
	return g.db.Model(&models.CartItem{}).Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (g *Gorm) DeleteCartItem(cartID, productID uint) error {
	result := g.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *Gorm) ClearCartItems(cartID uint) error {
	// The cart row itself is retained; an emptied cart stays an empty cart.
	return g.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

func (g *Gorm) SetCartCoupon(cartID uint, couponID *uint) error {
	return g.db.Model(&models.Cart{}).Where("cart_id = ?", cartID).
		Update("coupon_id", couponID).Error
}

func (g *Gorm) CouponByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := g.db.First(&coupon, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &coupon, nil
}

func (g *Gorm) CouponByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := g.db.Where("code = ?", code).First(&coupon).Error; err != nil {
		return nil, translate(err)
	}
	return &coupon, nil
}

func (g *Gorm) CreateOrder(order *models.Order) error {
	return g.db.Create(order).Error
}

func (g *Gorm) DecrementStock(productID uint, qty int) (bool, error) {
	// Single conditional UPDATE, never read-then-write: two concurrent
	// checkouts cannot both pass the stock check.
	result := g.db.Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", productID, qty).
		Updates(map[string]interface{}{
			"quantity": gorm.Expr("quantity - ?", qty),
			"sold":     gorm.Expr("sold + ?", qty),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (g *Gorm) Transact(fn func(Store) error) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Gorm{db: tx})
	})
}
