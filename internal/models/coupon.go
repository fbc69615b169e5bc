package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon discount types.
const (
	CouponTypePercent = "percent"
	CouponTypeFlat    = "flat"
)

// Coupon is a code-activated discount rule. Codes are stored uppercase and
// matched exactly; lookups are read-only from this service's perspective.
type Coupon struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Code          string     `json:"code" gorm:"uniqueIndex;type:varchar(50)" validate:"required,uppercase"`
	IsActive      bool       `json:"is_active" gorm:"column:is_active"`
	ExpiresAt     *time.Time `json:"expires_at" gorm:"column:expires_at"`
	MinOrderValue int64      `json:"min_order_value" gorm:"column:min_order_value" validate:"gte=0"`
	Type          string     `json:"type" validate:"required,oneof=percent flat"`
	Value         int64      `json:"value" validate:"required,gt=0"`
	gorm.Model               // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
