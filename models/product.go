package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID       string          `gorm:"primaryKey" json:"product_id"`
	ProductName     string          `gorm:"not null" json:"product_name"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"product_unit_price"` // minimum 1.00
	Description     string          `gorm:"not null" json:"description"`
	Category        string          `gorm:"not null" json:"product_category"`
	AvailableColors string          `gorm:"not null" json:"available_colors"`
	InStock         int             `json:"in_stock"`

	// Optional phone attributes
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Battery   string `json:"battery"`
	Cameras   string `json:"cameras"`
	Processor string `json:"processor"`
	Display   string `json:"display"`
	RAM       string `json:"ram"`

	Image       string `gorm:"not null" json:"product_image"`
	IsAvailable bool   `json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
