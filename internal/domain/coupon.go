package domain

import "time"

// Coupon is a percentage discount code with an expiry, a usage budget and
// optional location/service scoping. Empty scope lists mean unrestricted.
type Coupon struct {
	ID                  string    `json:"id"`
	Code                string    `json:"code"`
	Name                string    `json:"name"`
	DiscountPercentage  float64   `json:"discount_percentage"` // [0,100]
	UsageLimit          int       `json:"usage_limit"`
	UsedCount           int       `json:"used_count"`
	ExpiryDate          time.Time `json:"expiry_date"`
	IsActive            bool      `json:"is_active"`
	ApplicableLocations []string  `json:"applicable_locations,omitempty"`
	ApplicableServices  []string  `json:"applicable_services,omitempty"`
}

func (c *Coupon) IsExpired(now time.Time) bool {
	return now.After(c.ExpiryDate)
}

func (c *Coupon) IsValid(now time.Time) bool {
	return c.IsActive && !c.IsExpired(now) && c.UsedCount < c.UsageLimit
}

func (c *Coupon) RemainingUses() int {
	if c.UsedCount >= c.UsageLimit {
		return 0
	}
	return c.UsageLimit - c.UsedCount
}

// AppliesTo reports whether the coupon's scope lists admit the given
// location and service.
func (c *Coupon) AppliesTo(locationID, serviceID string) bool {
	if len(c.ApplicableLocations) > 0 && !contains(c.ApplicableLocations, locationID) {
		return false
	}
	if len(c.ApplicableServices) > 0 && !contains(c.ApplicableServices, serviceID) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

type CouponResult struct {
	Applicable bool    `json:"applicable"`
	Discount   float64 `json:"discount"`
	NewTotal   float64 `json:"new_total"`
}
