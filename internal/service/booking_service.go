package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"catering-platform/internal/domain"
	"catering-platform/internal/pricing"
)

const (
	maxReferenceAttempts = 10
	serviceWindowOpen    = 11 // 11:00
	serviceWindowClose   = 20 // 20:00
)

// BookingService owns the booking lifecycle: creation with frozen pricing,
// the two status machines, soft deletion and the reference/QR plumbing.
type BookingService struct {
	definitions   DefinitionRepository
	coupons       CouponRepository
	bookings      BookingRepository
	cache         BookingCache
	publisher     BookingPublisher
	qrEncoder     QRGenerator
	closedWeekday time.Weekday
	now           func() time.Time
	randInt       func(n int) int
}

func NewBookingService(definitions DefinitionRepository, coupons CouponRepository, bookings BookingRepository,
	cache BookingCache, publisher BookingPublisher, qr QRGenerator, closedWeekday time.Weekday) *BookingService {
	return &BookingService{
		definitions:   definitions,
		coupons:       coupons,
		bookings:      bookings,
		cache:         cache,
		publisher:     publisher,
		qrEncoder:     qr,
		closedWeekday: closedWeekday,
		now:           time.Now,
		randInt:       rand.Intn,
	}
}

func (s *BookingService) Create(ctx context.Context, input *domain.BookingRequest) (*domain.Booking, error) {
	if violations := s.creationViolations(input); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	def, err := s.definitions.GetDefinition(ctx, input.DefinitionID)
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
		return nil, fmt.Errorf("malformed definition: %w", err)
	}
	if !input.IsCustomOrder && def.ServiceID == "" {
		return nil, domain.NewValidationError("a package order must belong to a service")
	}

	result := pricing.Validate(def, &input.Selection, input.Attendees)
	if !result.OK {
		return nil, &domain.ValidationError{Violations: result.Errors}
	}

	var svc *domain.ServiceRecord
	if def.ServiceID != "" {
		if svc, err = s.definitions.GetServiceRecord(ctx, def.ServiceID); err != nil {
			return nil, fmt.Errorf("failed to load service record: %w", err)
		}
	}

	breakdown := pricing.Price(def, &input.Selection, input.Attendees, svc)

	booking := &domain.Booking{
		ID:            uuid.New().String(),
		IsCustomOrder: input.IsCustomOrder,
		Menu:          buildSnapshot(def, svc, input),
		Customer:      input.Customer,
		Attendees:     input.Attendees,
		SelectedItems: buildBookingItems(def, &input.Selection),
		Pricing:       breakdown,
		DeliveryType:  input.DeliveryType,
		DeliveryDate:  input.DeliveryDate,
		Address:       input.Address,
		Venue:         input.Selection.Venue,
		VenueCharge:   breakdown.VenueCharge,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		OrderDate:     s.now(),
	}

	couponID, err := s.applyCoupon(ctx, input, def, booking)
	if err != nil {
		return nil, err
	}

	if booking.Reference, err = s.generateReference(ctx, input.IsCustomOrder); err != nil {
		return nil, err
	}

	// Coupon redemption rides the same transaction as the insert, so the
	// usage counter and the booking can never disagree.
	if err := s.bookings.InsertBooking(ctx, booking, couponID); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if err := s.cache.SetMarker(ctx, s.cache.ReferenceKey(booking.Reference)); err != nil {
		log.Printf("[booking-svc] warning: failed to cache reference marker: %v", err)
	}
	if couponID != "" {
		if err := s.cache.SetMarker(ctx, s.cache.RedemptionKey(couponID, booking.ID)); err != nil {
			log.Printf("[booking-svc] warning: failed to cache redemption marker: %v", err)
		}
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(booking.Reference); err == nil {
			if err := s.bookings.SaveQRCode(ctx, booking.ID, qr); err != nil {
				log.Printf("[booking-svc] warning: failed to store QR code for %s: %v", booking.Reference, err)
			}
		} else {
			log.Printf("[booking-svc] warning: failed to generate QR code: %v", err)
		}
	}

	s.publish(ctx, domain.BookingEvent{
		Type:      "booking_created",
		BookingID: booking.ID,
		Reference: booking.Reference,
		Status:    booking.Status,
		Total:     booking.Pricing.Total,
		Timestamp: s.now(),
	})

	return booking, nil
}

// creationViolations enforces the invariants a booking must satisfy before
// it may be constructed. All violations are collected.
func (s *BookingService) creationViolations(input *domain.BookingRequest) []string {
	var violations []string

	if input.IsCustomOrder {
		if len(input.Selection.Items) == 0 {
			violations = append(violations, "a custom order must contain at least one selected item")
		}
	} else if input.DefinitionID == "" {
		violations = append(violations, "a package order must reference a package")
	}

	if input.DeliveryType == domain.DeliveryDelivery && input.Address == "" {
		violations = append(violations, "a delivery address is required for delivery orders")
	}
	if input.DeliveryType != domain.DeliveryDelivery && input.Address != "" {
		violations = append(violations, "an address is only accepted for delivery orders")
	}

	violations = append(violations, s.deliveryDateViolations(input.DeliveryDate)...)

	return violations
}

// deliveryDateViolations enforces the closed weekday and the service window.
// Applied at creation and again when an edit moves the delivery date.
func (s *BookingService) deliveryDateViolations(date time.Time) []string {
	var violations []string
	if date.Weekday() == s.closedWeekday {
		violations = append(violations, fmt.Sprintf("deliveries are not available on %s", s.closedWeekday))
	}
	hour := date.Hour()
	if hour < serviceWindowOpen || hour >= serviceWindowClose {
		if !(hour == serviceWindowClose && date.Minute() == 0) {
			violations = append(violations, fmt.Sprintf("delivery time must fall between %02d:00 and %02d:00",
				serviceWindowOpen, serviceWindowClose))
		}
	}
	return violations
}

// applyCoupon evaluates the coupon and folds the discount into the frozen
// total. Returns the coupon id to redeem inside the insert transaction.
func (s *BookingService) applyCoupon(ctx context.Context, input *domain.BookingRequest, def *domain.Definition, booking *domain.Booking) (string, error) {
	if input.CouponCode == "" {
		return "", nil
	}

	coupon, err := s.coupons.GetCouponByCode(ctx, input.CouponCode)
	if err != nil {
		return "", fmt.Errorf("failed to look up coupon: %w", err)
	}
	if coupon == nil {
		return "", ErrCouponNotFound
	}

	result := pricing.EvaluateCoupon(coupon, booking.Pricing.Total, def.LocationID, def.ServiceID, s.now())
	if !result.Applicable {
		return "", domain.NewValidationError(fmt.Sprintf("coupon %q is not applicable to this order", coupon.Code))
	}

	if exists, _ := s.cache.Exists(ctx, s.cache.RedemptionKey(coupon.ID, booking.ID)); exists {
		return "", domain.ErrCouponAlreadyRedeemed
	}

	booking.Pricing.Total = result.NewTotal
	booking.Pricing.PerAttendee = pricing.RoundCents(result.NewTotal / float64(booking.Attendees))
	return coupon.ID, nil
}

// generateReference produces {CU|BK}{YYMMDD}{NNN} and retries with a fresh
// random suffix on collision, bounded to maxReferenceAttempts.
func (s *BookingService) generateReference(ctx context.Context, isCustomOrder bool) (string, error) {
	prefix := "BK"
	if isCustomOrder {
		prefix = "CU"
	}
	datePart := s.now().Format("060102")

	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		ref := fmt.Sprintf("%s%s%03d", prefix, datePart, s.randInt(1000))

		if cached, _ := s.cache.Exists(ctx, s.cache.ReferenceKey(ref)); cached {
			continue
		}
		exists, err := s.bookings.ReferenceExists(ctx, ref)
		if err != nil {
			return "", fmt.Errorf("failed to check reference uniqueness: %w", err)
		}
		if !exists {
			return ref, nil
		}
	}
	return "", ErrReferenceExhausted
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking == nil || booking.IsDeleted {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListBookings(ctx)
}

func (s *BookingService) Update(ctx context.Context, id string, update *domain.BookingUpdate) (*domain.Booking, error) {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Customer != nil {
		booking.Customer = *update.Customer
	}
	if update.DeliveryType != nil {
		booking.DeliveryType = *update.DeliveryType
	}
	if update.DeliveryDate != nil {
		booking.DeliveryDate = *update.DeliveryDate
	}
	if update.Address != nil {
		booking.Address = *update.Address
	}
	if update.SelectedItems != nil {
		booking.SelectedItems = update.SelectedItems
	}
	if update.Pricing != nil {
		booking.Pricing = *update.Pricing
	}
	if update.AdminNotes != nil {
		booking.AdminNotes = *update.AdminNotes
	}

	var violations []string
	if booking.DeliveryType == domain.DeliveryDelivery && booking.Address == "" {
		violations = append(violations, "a delivery address is required for delivery orders")
	}
	if update.DeliveryDate != nil {
		violations = append(violations, s.deliveryDateViolations(booking.DeliveryDate)...)
	}
	if len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	if err := s.bookings.UpdateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, reason string) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown status %q", status))
	}

	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransition(status) {
		return nil, &domain.StateTransitionError{Field: "status", From: string(booking.Status), To: string(status)}
	}

	if err := s.bookings.UpdateBookingStatus(ctx, id, status, reason); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	booking.Status = status
	if status == domain.StatusCancelled {
		booking.CancellationReason = reason
	}

	s.publish(ctx, domain.BookingEvent{
		Type:      "status_changed",
		BookingID: booking.ID,
		Reference: booking.Reference,
		Status:    status,
		Timestamp: s.now(),
	})
	return booking, nil
}

func (s *BookingService) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, depositAmount *float64) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown payment status %q", status))
	}

	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.PaymentStatus.CanTransition(status) {
		// A payment regression is an operator error, worth calling out in
		// the log before the typed rejection goes back.
		log.Printf("[booking-svc] rejected payment regression on %s: %s -> %s", booking.Reference, booking.PaymentStatus, status)
		return nil, &domain.StateTransitionError{Field: "payment_status", From: string(booking.PaymentStatus), To: string(status)}
	}

	deposit := booking.DepositAmount
	if depositAmount != nil {
		deposit = *depositAmount
	}
	if err := s.bookings.UpdateBookingPayment(ctx, id, status, deposit); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	booking.PaymentStatus = status
	booking.DepositAmount = deposit

	s.publish(ctx, domain.BookingEvent{
		Type:          "payment_changed",
		BookingID:     booking.ID,
		Reference:     booking.Reference,
		PaymentStatus: status,
		Timestamp:     s.now(),
	})
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.bookings.SoftDeleteBooking(ctx, id)
}

func (s *BookingService) GetQRCode(ctx context.Context, id string) ([]byte, error) {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	qr, err := s.bookings.GetQRCode(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load QR code: %w", err)
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(booking.Reference); err == nil {
			if err := s.bookings.SaveQRCode(ctx, id, regenerated); err != nil {
				log.Printf("[booking-svc] warning: failed to cache regenerated QR code: %v", err)
			}
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *BookingService) publish(ctx context.Context, event domain.BookingEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		log.Printf("[booking-svc] warning: failed to publish %s event for %s: %v", event.Type, event.Reference, err)
	}
}

var _ BookingServiceInterface = (*BookingService)(nil)
