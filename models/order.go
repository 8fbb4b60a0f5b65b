package models

import "time"

// OrderStatusPlaced is the only status this system ever writes. Orders
// are immutable after creation; no endpoint mutates them.
const OrderStatusPlaced = "On its way"

type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	OrderDate       time.Time   `gorm:"not null" json:"order_date"`
	Status          string      `gorm:"not null" json:"status"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	ShippingAddress string      `gorm:"not null" json:"shipping_address"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem freezes quantity and price at placement time. PriceAtTime is
// the snapshot taken during checkout and must never be re-read from
// Product when displaying historical orders.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"not null;index" json:"order_id"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	PriceAtTime float64 `gorm:"not null" json:"price_at_time"`
}
