package repositories

import (
	"fmt"
	"strings"
	"sync"

	"konaseema/internal/models"
)

// MockCouponRepository is an in-memory implementation of CouponRepository.
type MockCouponRepository struct {
	coupons map[string]models.Coupon
	mu      sync.RWMutex
}

// NewMockCouponRepository creates a new instance of MockCouponRepository.
func NewMockCouponRepository() *MockCouponRepository {
	return &MockCouponRepository{
		coupons: make(map[string]models.Coupon),
	}
}

// Put stores a coupon keyed by its uppercase code.
func (r *MockCouponRepository) Put(coupon models.Coupon) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.coupons[strings.ToUpper(coupon.Code)] = coupon
}

// GetActiveByCode returns an active coupon by exact code match.
func (r *MockCouponRepository) GetActiveByCode(code string) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coupon, ok := r.coupons[code]
	if !ok || !coupon.IsActive {
		return nil, fmt.Errorf("coupon with code %s not found", code)
	}
	return &coupon, nil
}
