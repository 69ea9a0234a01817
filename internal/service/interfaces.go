package service

import (
	"context"

	"catering-platform/internal/domain"
)

type CateringServiceInterface interface {
	ValidateSelection(ctx context.Context, definitionID string, sel *domain.Selection, attendees int) (*domain.ValidationResult, error)
	ComputePrice(ctx context.Context, definitionID string, sel *domain.Selection, attendees int) (*domain.PriceBreakdown, error)
	EvaluateCoupon(ctx context.Context, code string, orderTotal float64, locationID, serviceID string) (*domain.CouponResult, error)
}

type BookingServiceInterface interface {
	Create(ctx context.Context, input *domain.BookingRequest) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	Update(ctx context.Context, id string, update *domain.BookingUpdate) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, reason string) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, depositAmount *float64) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	GetQRCode(ctx context.Context, id string) ([]byte, error)
}

type DefinitionRepository interface {
	GetDefinition(ctx context.Context, id string) (*domain.Definition, error)
	GetServiceRecord(ctx context.Context, id string) (*domain.ServiceRecord, error)
}

type CouponRepository interface {
	GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type BookingRepository interface {
	InsertBooking(ctx context.Context, booking *domain.Booking, couponID string) error
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	UpdateBooking(ctx context.Context, booking *domain.Booking) error
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus, reason string) error
	UpdateBookingPayment(ctx context.Context, id string, status domain.PaymentStatus, depositAmount float64) error
	SoftDeleteBooking(ctx context.Context, id string) error
	ReferenceExists(ctx context.Context, reference string) (bool, error)
	SaveQRCode(ctx context.Context, id string, qr []byte) error
	GetQRCode(ctx context.Context, id string) ([]byte, error)
}

type BookingCache interface {
	RedemptionKey(couponID, bookingID string) string
	ReferenceKey(reference string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type BookingPublisher interface {
	PublishBookingEvent(ctx context.Context, event domain.BookingEvent) error
}

type QRGenerator interface {
	Generate(reference string) ([]byte, error)
}
