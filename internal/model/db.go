package model

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailure PaymentStatus = "failure"
)

// User is created on register or on first Google login. At least one of
// PasswordHash and GoogleID is always set.
type User struct {
	ID           string  `gorm:"primaryKey;size:64;not null" json:"id"`
	Username     string  `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email        string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash *string `gorm:"size:128" json:"-"`
	GoogleID     *string `gorm:"size:128;uniqueIndex" json:"-"`
	Name         string  `gorm:"size:255" json:"name"`
	Picture      string  `gorm:"size:512" json:"picture"`
	Provider     string  `gorm:"size:32" json:"provider"` // local, google
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Product struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Image     string  `gorm:"size:512" json:"image"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	UserID       string      `gorm:"size:64;index;not null" json:"user_id"`
	TotalAmount  float64     `gorm:"not null" json:"total_amount"` // items + shipping
	City         string      `gorm:"size:128;not null" json:"city"`
	ShippingCost float64     `json:"shipping_cost"`
	Status       OrderStatus `gorm:"size:20;index;not null;default:'pending'" json:"status"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem is written atomically with its Order and never mutated.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	CreatedAt time.Time
}

// Payment references Order by id only; the gateway callback is the sole
// writer after creation.
type Payment struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	OrderID    uint          `gorm:"index;not null" json:"order_id"`
	ExternalID string        `gorm:"size:128;uniqueIndex;not null" json:"external_id"` // snap token
	Amount     float64       `gorm:"not null" json:"amount"`
	Status     PaymentStatus `gorm:"size:20;index;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
