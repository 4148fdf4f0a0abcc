package models

import "gorm.io/gorm"

// Order statuses. An order starts as pending and ends as either paid or
// payment_failed; no further transitions exist.
const (
	OrderStatusPending       = "pending"
	OrderStatusPaid          = "paid"
	OrderStatusPaymentFailed = "payment_failed"
)

// OrderItem is a single line of an order. Price is the unit price captured at
// purchase time, decoupled from later product price changes.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"type:varchar(36);index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price"` // Price at the time of order
	gorm.Model
}

// Order represents a committed customer order. TotalAmount equals the sum of
// its items' price*quantity at creation time and is frozen thereafter.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string      `json:"user_id" gorm:"type:varchar(36);index"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status" gorm:"type:varchar(50);default:pending"`
	PaymentMethod   string      `json:"payment_method" gorm:"type:varchar(50)"`
	ShippingAddress string      `json:"shipping_address" gorm:"type:text"`
	gorm.Model
}
