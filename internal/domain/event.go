package domain

import "time"

// BookingEvent is published to the bookings topic on creation and on every
// lifecycle transition.
type BookingEvent struct {
	Type          string        `json:"type"` // booking_created | status_changed | payment_changed
	BookingID     string        `json:"booking_id"`
	Reference     string        `json:"reference"`
	Status        BookingStatus `json:"status,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	Total         float64       `json:"total,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}
