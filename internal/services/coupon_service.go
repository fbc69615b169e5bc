package services

import (
	"fmt"
	"strings"
	"time"

	"konaseema/internal/models"
	"konaseema/internal/pricing"
	"konaseema/internal/repositories"
)

// CouponResult is the outcome of resolving a coupon code against a
// subtotal. Discount is zero whenever the code does not apply; Message is
// the user-facing explanation (empty only for an empty code).
type CouponResult struct {
	Discount int64  `json:"discount"`
	Message  string `json:"message"`
}

// CouponService resolves coupon codes. Every call recomputes the discount
// from scratch; callers must discard any previously computed discount
// before applying a new result.
type CouponService struct {
	couponRepo repositories.CouponRepository
	now        func() time.Time
}

// NewCouponService creates a new CouponService.
func NewCouponService(couponRepo repositories.CouponRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		now:        time.Now,
	}
}

// Apply validates a code against the current subtotal and computes the
// discount. The code is trimmed and uppercased before lookup; an empty code
// yields no discount and no message.
func (s *CouponService) Apply(code string, subtotal int64) CouponResult {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return CouponResult{}
	}

	coupon, err := s.couponRepo.GetActiveByCode(code)
	if err != nil || coupon == nil {
		return CouponResult{Message: "Invalid or expired coupon"}
	}

	if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(s.now()) {
		return CouponResult{Message: "Coupon expired"}
	}

	if subtotal < coupon.MinOrderValue {
		return CouponResult{Message: fmt.Sprintf("Minimum order %s", pricing.FormatMoney(coupon.MinOrderValue))}
	}

	var discount int64
	if coupon.Type == models.CouponTypePercent {
		discount = subtotal * coupon.Value / 100 // integer division floors
	} else {
		discount = coupon.Value
	}

	return CouponResult{
		Discount: discount,
		Message:  fmt.Sprintf("Coupon applied (-%s)", pricing.FormatMoney(discount)),
	}
}
