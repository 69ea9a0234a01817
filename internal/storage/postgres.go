package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"catering-platform/internal/domain"
)

// PostgresRepository serves definitions, service records, coupons and
// bookings. Nested structures (categories, items, pricing) live in JSONB
// columns; scalar lifecycle fields stay relational so transitions are a
// single UPDATE.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetDefinition(ctx context.Context, id string) (*domain.Definition, error) {
	var def domain.Definition
	var structure []byte
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, service_id, location_id, COALESCE(description, ''),
		       base_price, min_attendees, max_attendees, kind, is_active, structure
		FROM definitions
		WHERE id = $1`, id).
		Scan(&def.ID, &def.Name, &def.ServiceID, &def.LocationID, &def.Description,
			&def.BasePrice, &def.MinAttendees, &def.MaxAttendees, &def.Kind, &def.IsActive, &structure)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var nested struct {
		Categories  []domain.Category   `json:"categories"`
		SimpleItems []domain.SimpleItem `json:"simple_items"`
		Addons      domain.AddonSet     `json:"addons"`
	}
	if err := json.Unmarshal(structure, &nested); err != nil {
		return nil, fmt.Errorf("definition %s has malformed structure: %w", id, err)
	}
	def.Categories = nested.Categories
	def.SimpleItems = nested.SimpleItems
	def.Addons = nested.Addons
	return &def, nil
}

func (r *PostgresRepository) GetServiceRecord(ctx context.Context, id string) (*domain.ServiceRecord, error) {
	var svc domain.ServiceRecord
	var venueOptions []byte
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, is_function, COALESCE(venue_options, '[]')
		FROM services
		WHERE id = $1`, id).
		Scan(&svc.ID, &svc.Name, &svc.IsFunction, &venueOptions)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(venueOptions, &svc.VenueOptions); err != nil {
		return nil, fmt.Errorf("service %s has malformed venue options: %w", id, err)
	}
	return &svc, nil
}

func (r *PostgresRepository) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	var locations, services []byte
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, code, name, discount_percentage, usage_limit, used_count,
		       expiry_date, is_active, COALESCE(applicable_locations, '[]'), COALESCE(applicable_services, '[]')
		FROM coupons
		WHERE UPPER(code) = UPPER($1)`, code).
		Scan(&coupon.ID, &coupon.Code, &coupon.Name, &coupon.DiscountPercentage,
			&coupon.UsageLimit, &coupon.UsedCount, &coupon.ExpiryDate, &coupon.IsActive,
			&locations, &services)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(locations, &coupon.ApplicableLocations); err != nil {
		return nil, fmt.Errorf("coupon %s has malformed location scope: %w", coupon.Code, err)
	}
	if err := json.Unmarshal(services, &coupon.ApplicableServices); err != nil {
		return nil, fmt.Errorf("coupon %s has malformed service scope: %w", coupon.Code, err)
	}
	return &coupon, nil
}

// InsertBooking persists the booking and, when couponID is set, redeems the
// coupon in the same transaction. The compare-and-increment closes the race
// on the last remaining use; the redemption ledger's unique constraint
// blocks double-application for the same booking.
func (r *PostgresRepository) InsertBooking(ctx context.Context, booking *domain.Booking, couponID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	menu, err := json.Marshal(booking.Menu)
	if err != nil {
		return err
	}
	customer, err := json.Marshal(booking.Customer)
	if err != nil {
		return err
	}
	items, err := json.Marshal(booking.SelectedItems)
	if err != nil {
		return err
	}
	pricing, err := json.Marshal(booking.Pricing)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookings (id, reference, is_custom_order, menu, customer, attendees,
		                      selected_items, pricing, delivery_type, delivery_date, address,
		                      venue, venue_charge, status, payment_status, deposit_amount,
		                      order_date, admin_notes, cancellation_reason, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, false)
	`, booking.ID, booking.Reference, booking.IsCustomOrder, menu, customer, booking.Attendees,
		items, pricing, booking.DeliveryType, booking.DeliveryDate, booking.Address,
		booking.Venue, booking.VenueCharge, booking.Status, booking.PaymentStatus,
		booking.DepositAmount, booking.OrderDate, booking.AdminNotes, booking.CancellationReason)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if couponID != "" {
		result, err := tx.ExecContext(ctx, `
			UPDATE coupons
			SET used_count = used_count + 1
			WHERE id = $1 AND used_count < usage_limit
		`, couponID)
		if err != nil {
			return fmt.Errorf("failed to redeem coupon: %w", err)
		}
		affected, _ := result.RowsAffected()
		if affected == 0 {
			return domain.ErrCouponExhausted
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO coupon_redemptions (coupon_id, booking_id)
			VALUES ($1, $2)
		`, couponID, booking.ID); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23505" {
				return domain.ErrCouponAlreadyRedeemed
			}
			return fmt.Errorf("failed to record coupon redemption: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, reference, is_custom_order, menu, customer, attendees, selected_items,
		       pricing, delivery_type, delivery_date, COALESCE(address, ''), COALESCE(venue, ''),
		       venue_charge, status, payment_status, deposit_amount, order_date,
		       COALESCE(admin_notes, ''), COALESCE(cancellation_reason, ''), is_deleted
		FROM bookings
		WHERE id = $1`, id)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return booking, err
}

func (r *PostgresRepository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, reference, is_custom_order, menu, customer, attendees, selected_items,
		       pricing, delivery_type, delivery_date, COALESCE(address, ''), COALESCE(venue, ''),
		       venue_charge, status, payment_status, deposit_amount, order_date,
		       COALESCE(admin_notes, ''), COALESCE(cancellation_reason, ''), is_deleted
		FROM bookings
		WHERE is_deleted = false
		ORDER BY order_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			continue
		}
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var menu, customer, items, pricing []byte
	err := row.Scan(&booking.ID, &booking.Reference, &booking.IsCustomOrder, &menu, &customer,
		&booking.Attendees, &items, &pricing, &booking.DeliveryType, &booking.DeliveryDate,
		&booking.Address, &booking.Venue, &booking.VenueCharge, &booking.Status,
		&booking.PaymentStatus, &booking.DepositAmount, &booking.OrderDate,
		&booking.AdminNotes, &booking.CancellationReason, &booking.IsDeleted)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(menu, &booking.Menu); err != nil {
		return nil, fmt.Errorf("booking %s has malformed menu snapshot: %w", booking.ID, err)
	}
	if err := json.Unmarshal(customer, &booking.Customer); err != nil {
		return nil, fmt.Errorf("booking %s has malformed customer data: %w", booking.ID, err)
	}
	if err := json.Unmarshal(items, &booking.SelectedItems); err != nil {
		return nil, fmt.Errorf("booking %s has malformed items: %w", booking.ID, err)
	}
	if err := json.Unmarshal(pricing, &booking.Pricing); err != nil {
		return nil, fmt.Errorf("booking %s has malformed pricing: %w", booking.ID, err)
	}
	return &booking, nil
}

func (r *PostgresRepository) UpdateBooking(ctx context.Context, booking *domain.Booking) error {
	customer, err := json.Marshal(booking.Customer)
	if err != nil {
		return err
	}
	items, err := json.Marshal(booking.SelectedItems)
	if err != nil {
		return err
	}
	pricing, err := json.Marshal(booking.Pricing)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
		UPDATE bookings
		SET customer = $1, selected_items = $2, pricing = $3, delivery_type = $4,
		    delivery_date = $5, address = $6, admin_notes = $7
		WHERE id = $8 AND is_deleted = false
	`, customer, items, pricing, booking.DeliveryType, booking.DeliveryDate,
		booking.Address, booking.AdminNotes, booking.ID)
	return err
}

func (r *PostgresRepository) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus, reason string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1, cancellation_reason = $2
		WHERE id = $3 AND is_deleted = false
	`, status, reason, id)
	return err
}

func (r *PostgresRepository) UpdateBookingPayment(ctx context.Context, id string, status domain.PaymentStatus, depositAmount float64) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE bookings
		SET payment_status = $1, deposit_amount = $2
		WHERE id = $3 AND is_deleted = false
	`, status, depositAmount, id)
	return err
}

func (r *PostgresRepository) SoftDeleteBooking(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE bookings SET is_deleted = true WHERE id = $1
	`, id)
	return err
}

func (r *PostgresRepository) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM bookings WHERE reference = $1)
	`, reference).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, id string, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE bookings SET qr_code = $1 WHERE id = $2
	`, qr, id)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, id string) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRowContext(ctx, `
		SELECT qr_code FROM bookings WHERE id = $1
	`, id).Scan(&qr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return qr, err
}
