package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending" // order persisted, collection not confirmed
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Order is created once per checkout. The cart_id unique index enforces one
// order per cart; a second checkout attempt surfaces as a conflict.
type Order struct {
	OrderID string `gorm:"primaryKey" json:"order_id"`
	CartID  string `gorm:"uniqueIndex;not null" json:"cart_id"`

	FirstName       string `gorm:"not null" json:"first_name"`
	MiddleName      string `json:"middle_name"`
	LastName        string `gorm:"not null" json:"last_name"`
	StreetAddress   string `gorm:"not null" json:"street_address"`
	City            string `gorm:"not null" json:"city"`
	StateOrProvince string `gorm:"not null" json:"state_or_province"`
	EmailAddress    string `gorm:"not null" json:"email_address"`
	PhoneNumber     string `gorm:"not null" json:"phone_number"`
	MpesaNumber     string `gorm:"not null" json:"mpesa_number"`
	ZipCode         string `gorm:"not null" json:"zip_code"`

	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2)" json:"total_amount"` // copied from the cart at checkout
	TrackingNumber string          `gorm:"not null" json:"tracking_number"`

	PaymentStatus     PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CheckoutRequestID string        `json:"checkout_request_id"` // empty until the gateway accepts initiation

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
