package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	CartID      string          `gorm:"primaryKey" json:"cart_id"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2)" json:"total_amount"`
	CheckedOut  bool            `gorm:"not null;default:false" json:"checked_out"` // one-way: open -> checked_out
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CartItem struct {
	ItemID      string          `gorm:"primaryKey" json:"item_id"`
	CartID      string          `gorm:"index:idx_cart_product_color,unique" json:"cart_id"`
	ProductID   string          `gorm:"index:idx_cart_product_color,unique" json:"product_id"`
	Color       string          `gorm:"index:idx_cart_product_color,unique" json:"color"`
	ProductName string          `json:"product_name"` // denormalized at add time
	Price       decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
	Quantity    int             `json:"quantity"`
	AddedAt     time.Time       `json:"added_at"`
}
