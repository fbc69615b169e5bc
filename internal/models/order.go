package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatusPending is the only status this service ever writes. Later
// transitions belong to fulfillment.
const OrderStatusPending = "pending"

// Address is the delivery address persisted at checkout, owned by the
// ordering user. One row is written per checkout attempt that reaches the
// persistence stage.
type Address struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID       string `json:"user_id" gorm:"column:user_id;type:varchar(36)" validate:"required"`
	FullName     string `json:"full_name" gorm:"column:full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=7"`
	AddressLine1 string `json:"address_line1" gorm:"column:address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2" gorm:"column:address_line2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postal_code" gorm:"column:postal_code" validate:"required"`
	Country      string `json:"country" validate:"required"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Order is write-once from this service's perspective: created with status
// "pending" and never mutated here. Total = max(0, subtotal - discount) +
// shipping fee; the shipping fee is carried explicitly even while it is zero.
type Order struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID         string    `json:"user_id" gorm:"column:user_id;type:varchar(36)" validate:"required"`
	AddressID      string    `json:"address_id" gorm:"column:address_id;type:varchar(36)" validate:"required"`
	Subtotal       int64     `json:"subtotal" validate:"gte=0"`
	DiscountAmount int64     `json:"discount_amount" gorm:"column:discount_amount" validate:"gte=0"`
	CouponCode     *string   `json:"coupon_code" gorm:"column:coupon_code"`
	ShippingFee    int64     `json:"shipping_fee" gorm:"column:shipping_fee" validate:"gte=0"`
	Total          int64     `json:"total" validate:"gte=0"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// OrderItem is a denormalized snapshot of one cart line at submission time.
type OrderItem struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   string `json:"order_id" gorm:"column:order_id;type:varchar(36)" validate:"required"`
	ProductID string `json:"product_id" gorm:"column:product_id;type:varchar(36)" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Size      string `json:"size"`
	UnitPrice int64  `json:"unit_price" gorm:"column:unit_price" validate:"gte=0"`
	Qty       int    `json:"qty" validate:"gt=0"`
}
