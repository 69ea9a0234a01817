package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCouponExhausted is returned when a redemption loses the race for a
	// coupon's last remaining use.
	ErrCouponExhausted = errors.New("coupon usage limit reached")
	// ErrCouponAlreadyRedeemed guards against double-applying a coupon to
	// the same booking.
	ErrCouponAlreadyRedeemed = errors.New("coupon already redeemed for this booking")
)

// ValidationError carries every violated rule, never just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// StateTransitionError reports a status move the lifecycle tables forbid.
type StateTransitionError struct {
	Field string // "status" or "payment_status"
	From  string
	To    string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition from %q to %q", e.Field, e.From, e.To)
}
