package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catering-platform/internal/domain"
	"catering-platform/internal/pricing"
)

var (
	ErrDefinitionNotFound = errors.New("definition does not exist")
	ErrBookingNotFound    = errors.New("booking does not exist")
	ErrCouponNotFound     = errors.New("coupon does not exist")
	ErrReferenceExhausted = errors.New("could not generate a unique booking reference")
	ErrDefinitionDisabled = errors.New("definition is not active")
)

// CateringService runs the selection validator, price calculator and coupon
// evaluator against definitions resolved from storage. The engine calls are
// pure; this layer only materializes their inputs.
type CateringService struct {
	definitions DefinitionRepository
	coupons     CouponRepository
	now         func() time.Time
}

func NewCateringService(definitions DefinitionRepository, coupons CouponRepository) *CateringService {
	return &CateringService{
		definitions: definitions,
		coupons:     coupons,
		now:         time.Now,
	}
}

func (s *CateringService) ValidateSelection(ctx context.Context, definitionID string, sel *domain.Selection, attendees int) (*domain.ValidationResult, error) {
	def, err := s.loadDefinition(ctx, definitionID)
	if err != nil {
		return nil, err
	}
	result := pricing.Validate(def, sel, attendees)
	return &result, nil
}

func (s *CateringService) ComputePrice(ctx context.Context, definitionID string, sel *domain.Selection, attendees int) (*domain.PriceBreakdown, error) {
	def, err := s.loadDefinition(ctx, definitionID)
	if err != nil {
		return nil, err
	}

	result := pricing.Validate(def, sel, attendees)
	if !result.OK {
		return nil, &domain.ValidationError{Violations: result.Errors}
	}

	svc, err := s.serviceRecord(ctx, def)
	if err != nil {
		return nil, err
	}

	breakdown := pricing.Price(def, sel, attendees, svc)
	return &breakdown, nil
}

func (s *CateringService) EvaluateCoupon(ctx context.Context, code string, orderTotal float64, locationID, serviceID string) (*domain.CouponResult, error) {
	coupon, err := s.coupons.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	result := pricing.EvaluateCoupon(coupon, orderTotal, locationID, serviceID, s.now())
	return &result, nil
}

func (s *CateringService) loadDefinition(ctx context.Context, id string) (*domain.Definition, error) {
	def, err := s.definitions.GetDefinition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load definition: %w", err)
	}
	if def == nil {
		return nil, ErrDefinitionNotFound
	}
	if !def.IsActive {
		return nil, ErrDefinitionDisabled
	}
	if err := def.CheckStructure(); err != nil {
		// Broken catalog data, not a customer mistake.
		return nil, fmt.Errorf("malformed definition: %w", err)
	}
	return def, nil
}

// serviceRecord resolves the owning service for venue surcharges. Custom
// orders may have no service; the calculator treats nil as "no venue".
func (s *CateringService) serviceRecord(ctx context.Context, def *domain.Definition) (*domain.ServiceRecord, error) {
	if def.ServiceID == "" {
		return nil, nil
	}
	svc, err := s.definitions.GetServiceRecord(ctx, def.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service record: %w", err)
	}
	return svc, nil
}

var _ CateringServiceInterface = (*CateringService)(nil)
