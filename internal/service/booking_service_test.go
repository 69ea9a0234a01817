package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catering-platform/internal/domain"
	"catering-platform/internal/mocks"
)

var fixedNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC) // Monday

// validDeliveryDate is a Friday at 12:30, inside the service window.
var validDeliveryDate = time.Date(2026, 6, 5, 12, 30, 0, 0, time.UTC)

type bookingFixture struct {
	definitions *mocks.DefinitionRepository
	coupons     *mocks.CouponRepository
	bookings    *mocks.BookingRepository
	cache       *mocks.BookingCache
	publisher   *mocks.BookingPublisher
	qr          *mocks.QRGenerator
	svc         *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	f := &bookingFixture{
		definitions: mocks.NewDefinitionRepository(t),
		coupons:     mocks.NewCouponRepository(t),
		bookings:    mocks.NewBookingRepository(t),
		cache:       mocks.NewBookingCache(t),
		publisher:   mocks.NewBookingPublisher(t),
		qr:          mocks.NewQRGenerator(t),
	}
	f.svc = NewBookingService(f.definitions, f.coupons, f.bookings, f.cache, f.publisher, f.qr, time.Monday)
	f.svc.now = func() time.Time { return fixedNow }
	f.svc.randInt = func(n int) int { return 42 }
	return f
}

func packageRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		DefinitionID: "pkg-1",
		Selection:    *validSelection(),
		Attendees:    20,
		Customer:     domain.Customer{Name: "Priya Sharma", Email: "priya@example.com", Phone: "0400000000"},
		DeliveryType: domain.DeliveryPickup,
		DeliveryDate: validDeliveryDate,
		LocationName: "City Kitchen",
	}
}

func (f *bookingFixture) expectHappyPath(ctx context.Context, reference string, couponID string) {
	f.definitions.On("GetDefinition", ctx, "pkg-1").Return(activeDefinition(), nil)
	f.definitions.On("GetServiceRecord", ctx, "svc-1").Return(&domain.ServiceRecord{ID: "svc-1", Name: "Catering"}, nil)
	f.cache.On("ReferenceKey", reference).Return("ref:" + reference)
	f.cache.On("Exists", ctx, "ref:"+reference).Return(false, nil)
	f.bookings.On("ReferenceExists", ctx, reference).Return(false, nil)
	f.bookings.On("InsertBooking", ctx, mock.Anything, couponID).Return(nil)
	f.cache.On("SetMarker", ctx, "ref:"+reference).Return(nil)
	f.qr.On("Generate", reference).Return([]byte("png-bytes"), nil)
	f.bookings.On("SaveQRCode", ctx, mock.Anything, []byte("png-bytes")).Return(nil)
	f.publisher.On("PublishBookingEvent", ctx, mock.Anything).Return(nil)
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("freezes_pricing_and_snapshot", func(t *testing.T) {
		f := newBookingFixture(t)
		f.expectHappyPath(ctx, "BK260601042", "")

		booking, err := f.svc.Create(ctx, packageRequest())
		require.NoError(t, err)

		assert.Equal(t, "BK260601042", booking.Reference)
		assert.Equal(t, domain.StatusPending, booking.Status)
		assert.Equal(t, domain.PaymentPending, booking.PaymentStatus)
		assert.Equal(t, 660.0, booking.Pricing.Total)
		assert.Equal(t, fixedNow, booking.OrderDate)
		assert.Equal(t, "pkg-1", booking.Menu.PackageID)
		assert.Equal(t, "Catering", booking.Menu.ServiceName)
		assert.Equal(t, "City Kitchen", booking.Menu.LocationName)
		assert.NotEmpty(t, booking.ID)
		assert.NotEmpty(t, booking.SelectedItems)
	})

	t.Run("collects_all_creation_violations", func(t *testing.T) {
		f := newBookingFixture(t)

		input := &domain.BookingRequest{
			IsCustomOrder: true,
			DeliveryType:  domain.DeliveryDelivery,
			DeliveryDate:  time.Date(2026, 6, 8, 9, 0, 0, 0, time.UTC), // Monday 09:00
		}
		_, err := f.svc.Create(ctx, input)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Violations, 4)
	})

	t.Run("address_rejected_for_pickup", func(t *testing.T) {
		f := newBookingFixture(t)

		input := packageRequest()
		input.Address = "12 Example St"
		_, err := f.svc.Create(ctx, input)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations[0], "only accepted for delivery")
	})

	t.Run("closing_time_exactly_accepted", func(t *testing.T) {
		f := newBookingFixture(t)
		f.expectHappyPath(ctx, "BK260601042", "")

		input := packageRequest()
		input.DeliveryDate = time.Date(2026, 6, 5, 20, 0, 0, 0, time.UTC)
		_, err := f.svc.Create(ctx, input)
		assert.NoError(t, err)
	})

	t.Run("package_without_service_rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		def := activeDefinition()
		def.ServiceID = ""
		f.definitions.On("GetDefinition", ctx, "pkg-1").Return(def, nil)

		_, err := f.svc.Create(ctx, packageRequest())

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations[0], "belong to a service")
	})

	t.Run("unknown_definition", func(t *testing.T) {
		f := newBookingFixture(t)
		f.definitions.On("GetDefinition", ctx, "pkg-1").Return(nil, nil)

		_, err := f.svc.Create(ctx, packageRequest())
		assert.ErrorIs(t, err, ErrDefinitionNotFound)
	})

	t.Run("disabled_definition", func(t *testing.T) {
		f := newBookingFixture(t)
		def := activeDefinition()
		def.IsActive = false
		f.definitions.On("GetDefinition", ctx, "pkg-1").Return(def, nil)

		_, err := f.svc.Create(ctx, packageRequest())
		assert.ErrorIs(t, err, ErrDefinitionDisabled)
	})

	t.Run("invalid_selection", func(t *testing.T) {
		f := newBookingFixture(t)
		f.definitions.On("GetDefinition", ctx, "pkg-1").Return(activeDefinition(), nil)

		input := packageRequest()
		input.Selection = domain.Selection{}
		_, err := f.svc.Create(ctx, input)

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("retries_reference_on_collision", func(t *testing.T) {
		f := newBookingFixture(t)
		rolls := []int{1, 2}
		f.svc.randInt = func(n int) int {
			roll := rolls[0]
			rolls = rolls[1:]
			return roll
		}
		f.definitions.On("GetDefinition", ctx, "pkg-1").Return(activeDefinition(), nil)
		f.definitions.On("GetServiceRecord", ctx, "svc-1").Return(&domain.ServiceRecord{ID: "svc-1", Name: "Catering"}, nil)
		f.cache.On("ReferenceKey", mock.Anything).Return("ref:any")
		f.cache.On("Exists", ctx, "ref:any").Return(false, nil)
		f.bookings.On("ReferenceExists", ctx, "BK260601001").Return(true, nil)
		f.bookings.On("ReferenceExists", ctx, "BK260601002").Return(false, nil)
		f.bookings.On("InsertBooking", ctx, mock.Anything, "").Return(nil)
		f.cache.On("SetMarker", ctx, mock.Anything).Return(nil)
		f.qr.On("Generate", "BK260601002").Return([]byte("png"), nil)
		f.bookings.On("SaveQRCode", ctx, mock.Anything, mock.Anything).Return(nil)
		f.publisher.On("PublishBookingEvent", ctx, mock.Anything).Return(nil)

		booking, err := f.svc.Create(ctx, packageRequest())
		require.NoError(t, err)
		assert.Equal(t, "BK260601002", booking.Reference)
	})

	t.Run("gives_up_after_bounded_reference_attempts", func(t *testing.T) {
		f := newBookingFixture(t)
		f.definitions.On("GetDefinition", ctx, "pkg-1").Return(activeDefinition(), nil)
		f.definitions.On("GetServiceRecord", ctx, "svc-1").Return(&domain.ServiceRecord{ID: "svc-1", Name: "Catering"}, nil)
		f.cache.On("ReferenceKey", mock.Anything).Return("ref:any")
		f.cache.On("Exists", ctx, "ref:any").Return(false, nil)
		f.bookings.On("ReferenceExists", ctx, "BK260601042").Return(true, nil).Times(maxReferenceAttempts)

		_, err := f.svc.Create(ctx, packageRequest())
		assert.ErrorIs(t, err, ErrReferenceExhausted)
	})

	t.Run("custom_order_reference_prefix", func(t *testing.T) {
		f := newBookingFixture(t)
		def := activeDefinition()
		def.Kind = domain.KindCustom
		def.BasePrice = 0
		def.Categories = []domain.Category{{
			Name:    "mains",
			Enabled: true,
			IncludedItems: []domain.MenuItem{
				{ItemID: "butter-chicken", Name: "Butter Chicken", PricePerPerson: 14, IsAvailable: true},
			},
		}}
		f.definitions.On("GetDefinition", ctx, "pkg-1").Return(def, nil)
		f.definitions.On("GetServiceRecord", ctx, "svc-1").Return(&domain.ServiceRecord{ID: "svc-1", Name: "Catering"}, nil)
		f.cache.On("ReferenceKey", "CU260601042").Return("ref:CU260601042")
		f.cache.On("Exists", ctx, "ref:CU260601042").Return(false, nil)
		f.bookings.On("ReferenceExists", ctx, "CU260601042").Return(false, nil)
		f.bookings.On("InsertBooking", ctx, mock.Anything, "").Return(nil)
		f.cache.On("SetMarker", ctx, mock.Anything).Return(nil)
		f.qr.On("Generate", "CU260601042").Return([]byte("png"), nil)
		f.bookings.On("SaveQRCode", ctx, mock.Anything, mock.Anything).Return(nil)
		f.publisher.On("PublishBookingEvent", ctx, mock.Anything).Return(nil)

		input := packageRequest()
		input.IsCustomOrder = true
		input.Selection = domain.Selection{Items: []domain.ItemSelection{{ItemID: "butter-chicken"}}}

		booking, err := f.svc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "CU260601042", booking.Reference)
		assert.Empty(t, booking.Menu.PackageID)
		assert.Equal(t, 280.0, booking.Pricing.Total) // 14 * 20 attendees
	})
}

func TestBookingService_CreateWithCoupon(t *testing.T) {
	ctx := context.Background()

	coupon := &domain.Coupon{
		ID:                 "cpn-1",
		Code:               "WELCOME20",
		DiscountPercentage: 20,
		UsageLimit:         100,
		ExpiryDate:         fixedNow.AddDate(0, 1, 0),
		IsActive:           true,
	}

	t.Run("discount_folds_into_frozen_total", func(t *testing.T) {
		f := newBookingFixture(t)
		f.expectHappyPath(ctx, "BK260601042", "cpn-1")
		f.coupons.On("GetCouponByCode", ctx, "WELCOME20").Return(coupon, nil)
		f.cache.On("RedemptionKey", "cpn-1", mock.Anything).Return("redeem:cpn-1")
		f.cache.On("Exists", ctx, "redeem:cpn-1").Return(false, nil)
		f.cache.On("SetMarker", ctx, "redeem:cpn-1").Return(nil)

		input := packageRequest()
		input.CouponCode = "WELCOME20"

		booking, err := f.svc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 528.0, booking.Pricing.Total) // 660 - 20%
		assert.Equal(t, 26.4, booking.Pricing.PerAttendee)
	})

	t.Run("per_attendee_rounded_after_discount", func(t *testing.T) {
		f := newBookingFixture(t)
		f.expectHappyPath(ctx, "BK260601042", "cpn-2")
		f.coupons.On("GetCouponByCode", ctx, "ODD125").Return(&domain.Coupon{
			ID:                 "cpn-2",
			Code:               "ODD125",
			DiscountPercentage: 12.5,
			UsageLimit:         100,
			ExpiryDate:         fixedNow.AddDate(0, 1, 0),
			IsActive:           true,
		}, nil)
		f.cache.On("RedemptionKey", "cpn-2", mock.Anything).Return("redeem:cpn-2")
		f.cache.On("Exists", ctx, "redeem:cpn-2").Return(false, nil)
		f.cache.On("SetMarker", ctx, "redeem:cpn-2").Return(nil)

		input := packageRequest()
		input.Attendees = 19
		input.CouponCode = "ODD125"

		// 627 total, 12.5% off -> 548.62; the uneven split still lands on cents.
		booking, err := f.svc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 548.62, booking.Pricing.Total)
		assert.Equal(t, 28.87, booking.Pricing.PerAttendee)
	})

	t.Run("unknown_coupon", func(t *testing.T) {
		f := newBookingFixture(t)
		f.definitions.On("GetDefinition", ctx, "pkg-1").Return(activeDefinition(), nil)
		f.definitions.On("GetServiceRecord", ctx, "svc-1").Return(&domain.ServiceRecord{ID: "svc-1"}, nil)
		f.coupons.On("GetCouponByCode", ctx, "NOPE").Return(nil, nil)

		input := packageRequest()
		input.CouponCode = "NOPE"

		_, err := f.svc.Create(ctx, input)
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})

	t.Run("inapplicable_coupon_rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		expired := *coupon
		expired.ExpiryDate = fixedNow.AddDate(0, -1, 0)
		f.definitions.On("GetDefinition", ctx, "pkg-1").Return(activeDefinition(), nil)
		f.definitions.On("GetServiceRecord", ctx, "svc-1").Return(&domain.ServiceRecord{ID: "svc-1"}, nil)
		f.coupons.On("GetCouponByCode", ctx, "WELCOME20").Return(&expired, nil)

		input := packageRequest()
		input.CouponCode = "WELCOME20"

		_, err := f.svc.Create(ctx, input)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("cached_redemption_marker_blocks_reuse", func(t *testing.T) {
		f := newBookingFixture(t)
		f.definitions.On("GetDefinition", ctx, "pkg-1").Return(activeDefinition(), nil)
		f.definitions.On("GetServiceRecord", ctx, "svc-1").Return(&domain.ServiceRecord{ID: "svc-1"}, nil)
		f.coupons.On("GetCouponByCode", ctx, "WELCOME20").Return(coupon, nil)
		f.cache.On("RedemptionKey", "cpn-1", mock.Anything).Return("redeem:cpn-1")
		f.cache.On("Exists", ctx, "redeem:cpn-1").Return(true, nil)

		input := packageRequest()
		input.CouponCode = "WELCOME20"

		_, err := f.svc.Create(ctx, input)
		assert.ErrorIs(t, err, domain.ErrCouponAlreadyRedeemed)
	})

	t.Run("exhausted_counter_surfaces_from_storage", func(t *testing.T) {
		f := newBookingFixture(t)
		f.definitions.On("GetDefinition", ctx, "pkg-1").Return(activeDefinition(), nil)
		f.definitions.On("GetServiceRecord", ctx, "svc-1").Return(&domain.ServiceRecord{ID: "svc-1"}, nil)
		f.coupons.On("GetCouponByCode", ctx, "WELCOME20").Return(coupon, nil)
		f.cache.On("RedemptionKey", "cpn-1", mock.Anything).Return("redeem:cpn-1")
		f.cache.On("Exists", ctx, mock.Anything).Return(false, nil)
		f.cache.On("ReferenceKey", "BK260601042").Return("ref:BK260601042")
		f.bookings.On("ReferenceExists", ctx, "BK260601042").Return(false, nil)
		f.bookings.On("InsertBooking", ctx, mock.Anything, "cpn-1").Return(domain.ErrCouponExhausted)

		input := packageRequest()
		input.CouponCode = "WELCOME20"

		_, err := f.svc.Create(ctx, input)
		assert.ErrorIs(t, err, domain.ErrCouponExhausted)
	})
}

func TestBookingService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{ID: "b-1"}, nil)

		booking, err := f.svc.Get(ctx, "b-1")
		assert.NoError(t, err)
		assert.Equal(t, "b-1", booking.ID)
	})

	t.Run("missing", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(nil, nil)

		_, err := f.svc.Get(ctx, "b-1")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("soft_deleted_hidden", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{ID: "b-1", IsDeleted: true}, nil)

		_, err := f.svc.Get(ctx, "b-1")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestBookingService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merges_editable_fields", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{
			ID:           "b-1",
			DeliveryType: domain.DeliveryPickup,
			Customer:     domain.Customer{Name: "Old Name"},
		}, nil)
		f.bookings.On("UpdateBooking", ctx, mock.Anything).Return(nil)

		notes := "call on arrival"
		booking, err := f.svc.Update(ctx, "b-1", &domain.BookingUpdate{
			Customer:   &domain.Customer{Name: "New Name", Email: "new@example.com"},
			AdminNotes: &notes,
		})
		require.NoError(t, err)
		assert.Equal(t, "New Name", booking.Customer.Name)
		assert.Equal(t, "call on arrival", booking.AdminNotes)
		assert.Equal(t, domain.DeliveryPickup, booking.DeliveryType)
	})

	t.Run("date_edit_onto_closed_weekday_rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{
			ID:           "b-1",
			DeliveryType: domain.DeliveryPickup,
			DeliveryDate: validDeliveryDate,
		}, nil)

		closedDay := time.Date(2026, 6, 8, 12, 0, 0, 0, time.UTC) // Monday
		_, err := f.svc.Update(ctx, "b-1", &domain.BookingUpdate{DeliveryDate: &closedDay})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations[0], "not available on Monday")
	})

	t.Run("date_edit_outside_window_rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{
			ID:           "b-1",
			DeliveryType: domain.DeliveryPickup,
			DeliveryDate: validDeliveryDate,
		}, nil)

		tooEarly := time.Date(2026, 6, 9, 9, 0, 0, 0, time.UTC) // Tuesday 09:00
		_, err := f.svc.Update(ctx, "b-1", &domain.BookingUpdate{DeliveryDate: &tooEarly})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations[0], "between 11:00 and 20:00")
	})

	t.Run("valid_date_edit_accepted", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{
			ID:           "b-1",
			DeliveryType: domain.DeliveryPickup,
			DeliveryDate: validDeliveryDate,
		}, nil)
		f.bookings.On("UpdateBooking", ctx, mock.Anything).Return(nil)

		newDate := time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC) // Wednesday 15:00
		booking, err := f.svc.Update(ctx, "b-1", &domain.BookingUpdate{DeliveryDate: &newDate})
		require.NoError(t, err)
		assert.Equal(t, newDate, booking.DeliveryDate)
	})

	t.Run("switching_to_delivery_requires_address", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{
			ID:           "b-1",
			DeliveryType: domain.DeliveryPickup,
		}, nil)

		deliveryType := domain.DeliveryDelivery
		_, err := f.svc.Update(ctx, "b-1", &domain.BookingUpdate{DeliveryType: &deliveryType})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("forward_transition", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{ID: "b-1", Status: domain.StatusPending}, nil)
		f.bookings.On("UpdateBookingStatus", ctx, "b-1", domain.StatusConfirmed, "").Return(nil)
		f.publisher.On("PublishBookingEvent", ctx, mock.Anything).Return(nil)

		booking, err := f.svc.UpdateStatus(ctx, "b-1", domain.StatusConfirmed, "")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, booking.Status)
	})

	t.Run("cancellation_records_reason", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{ID: "b-1", Status: domain.StatusConfirmed}, nil)
		f.bookings.On("UpdateBookingStatus", ctx, "b-1", domain.StatusCancelled, "client request").Return(nil)
		f.publisher.On("PublishBookingEvent", ctx, mock.Anything).Return(nil)

		booking, err := f.svc.UpdateStatus(ctx, "b-1", domain.StatusCancelled, "client request")
		require.NoError(t, err)
		assert.Equal(t, "client request", booking.CancellationReason)
	})

	t.Run("terminal_state_locked", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{ID: "b-1", Status: domain.StatusCompleted}, nil)

		_, err := f.svc.UpdateStatus(ctx, "b-1", domain.StatusCancelled, "")

		var terr *domain.StateTransitionError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "status", terr.Field)
		assert.Equal(t, "completed", terr.From)
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.UpdateStatus(ctx, "b-1", domain.BookingStatus("shipped"), "")

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestBookingService_UpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit_then_full", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{ID: "b-1", PaymentStatus: domain.PaymentPending}, nil)
		f.bookings.On("UpdateBookingPayment", ctx, "b-1", domain.PaymentDepositPaid, 150.0).Return(nil)
		f.publisher.On("PublishBookingEvent", ctx, mock.Anything).Return(nil)

		deposit := 150.0
		booking, err := f.svc.UpdatePaymentStatus(ctx, "b-1", domain.PaymentDepositPaid, &deposit)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentDepositPaid, booking.PaymentStatus)
		assert.Equal(t, 150.0, booking.DepositAmount)
	})

	t.Run("regression_rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{ID: "b-1", PaymentStatus: domain.PaymentFullyPaid}, nil)

		_, err := f.svc.UpdatePaymentStatus(ctx, "b-1", domain.PaymentDepositPaid, nil)

		var terr *domain.StateTransitionError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "payment_status", terr.Field)
	})
}

func TestBookingService_Delete(t *testing.T) {
	ctx := context.Background()

	f := newBookingFixture(t)
	f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{ID: "b-1"}, nil)
	f.bookings.On("SoftDeleteBooking", ctx, "b-1").Return(nil)

	assert.NoError(t, f.svc.Delete(ctx, "b-1"))
}

func TestBookingService_GetQRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("stored_code_returned", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{ID: "b-1", Reference: "BK260601042"}, nil)
		f.bookings.On("GetQRCode", ctx, "b-1").Return([]byte("stored"), nil)

		qr, err := f.svc.GetQRCode(ctx, "b-1")
		assert.NoError(t, err)
		assert.Equal(t, []byte("stored"), qr)
	})

	t.Run("missing_code_regenerated", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.On("GetBooking", ctx, "b-1").Return(&domain.Booking{ID: "b-1", Reference: "BK260601042"}, nil)
		f.bookings.On("GetQRCode", ctx, "b-1").Return(nil, nil)
		f.qr.On("Generate", "BK260601042").Return([]byte("fresh"), nil)
		f.bookings.On("SaveQRCode", ctx, "b-1", []byte("fresh")).Return(nil)

		qr, err := f.svc.GetQRCode(ctx, "b-1")
		assert.NoError(t, err)
		assert.Equal(t, []byte("fresh"), qr)
	})
}
