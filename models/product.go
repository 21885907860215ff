package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CategoryID  uint      `gorm:"index" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	OwnerID     string    `gorm:"index;not null" json:"owner_id"` // vendor who listed the product
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Price       float64   `gorm:"not null;check:price >= 0" json:"price"`
	Quantity    int       `gorm:"default:0;check:quantity >= 0" json:"quantity"` // units in stock
	Sold        int       `gorm:"default:0" json:"sold"`
	Image       string    `gorm:"not null" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
