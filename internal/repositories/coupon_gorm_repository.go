package repositories

import (
	"fmt"

	"konaseema/internal/models"

	"gorm.io/gorm"
)

// GORMCouponRepository is a GORM implementation of CouponRepository.
type GORMCouponRepository struct {
	db *gorm.DB
}

// NewGORMCouponRepository creates a new instance of GORMCouponRepository.
func NewGORMCouponRepository(db *gorm.DB) *GORMCouponRepository {
	return &GORMCouponRepository{
		db: db,
	}
}

// GetActiveByCode retrieves an active coupon by exact code match.
func (r *GORMCouponRepository) GetActiveByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, "code = ? AND is_active = ?", code, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("coupon with code %s not found", code)
		}
		return nil, fmt.Errorf("failed to get coupon by code %s: %w", code, err)
	}
	return &coupon, nil
}
