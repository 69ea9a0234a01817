package pricing

import (
	"time"

	"catering-platform/internal/domain"
)

// EvaluateCoupon checks a coupon against its validity and scope constraints
// and computes the discount for the given order total. Evaluation never
// mutates the coupon; redeeming it is the storage layer's job.
func EvaluateCoupon(coupon *domain.Coupon, orderTotal float64, locationID, serviceID string, now time.Time) domain.CouponResult {
	if !coupon.IsValid(now) || !coupon.AppliesTo(locationID, serviceID) {
		return domain.CouponResult{Applicable: false, NewTotal: orderTotal}
	}

	discount := RoundCents(orderTotal * coupon.DiscountPercentage / 100)
	newTotal := RoundCents(orderTotal - discount)
	if newTotal < 0 {
		newTotal = 0
	}
	return domain.CouponResult{
		Applicable: true,
		Discount:   discount,
		NewTotal:   newTotal,
	}
}
