package repositories

import "konaseema/internal/models"

// CouponRepository defines the interface for coupon lookups. Coupons are
// read-only from this service's perspective.
type CouponRepository interface {
	// GetActiveByCode returns the active coupon matching an uppercase code,
	// or an error when no such coupon exists.
	GetActiveByCode(code string) (*models.Coupon, error)
}
