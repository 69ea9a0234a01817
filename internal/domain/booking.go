package domain

import "time"

type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "Pickup"
	DeliveryDelivery DeliveryType = "Delivery"
	DeliveryEvent    DeliveryType = "Event"
)

type BookingItemType string

const (
	ItemIncluded BookingItemType = "included"
	ItemSelected BookingItemType = "selected"
	ItemAddon    BookingItemType = "addon"
)

// MenuSnapshot freezes the sold menu at order time so later catalog edits
// never change a placed order. ServiceID/ServiceName may be empty for
// custom orders.
type MenuSnapshot struct {
	PackageID    string  `json:"package_id,omitempty"`
	Name         string  `json:"name"`
	BasePrice    float64 `json:"base_price"`
	LocationID   string  `json:"location_id"`
	LocationName string  `json:"location_name"`
	ServiceID    string  `json:"service_id,omitempty"`
	ServiceName  string  `json:"service_name,omitempty"`
}

type Customer struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
	DietaryRequirements string `json:"dietary_requirements,omitempty"`
	SpiceLevel          string `json:"spice_level,omitempty"`
}

// BookingItem is a denormalized copy of a chosen item: name and price are
// frozen here, not referenced from the catalog.
type BookingItem struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	Type         BookingItemType `json:"type"`
	Price        float64         `json:"price"`
	PricePerUnit float64         `json:"price_per_unit,omitempty"`
	Quantity     int             `json:"quantity"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsVegan      bool            `json:"is_vegan"`
}

// Booking is the frozen, priced record of a placed order. Pricing and
// selections are fixed at creation; only the lifecycle fields and a bounded
// editable set may change afterwards. Deletion is logical.
type Booking struct {
	ID                 string         `json:"id"`
	Reference          string         `json:"reference"`
	IsCustomOrder      bool           `json:"is_custom_order"`
	Menu               MenuSnapshot   `json:"menu"`
	Customer           Customer       `json:"customer"`
	Attendees          int            `json:"attendees"`
	SelectedItems      []BookingItem  `json:"selected_items"`
	Pricing            PriceBreakdown `json:"pricing"`
	DeliveryType       DeliveryType   `json:"delivery_type"`
	DeliveryDate       time.Time      `json:"delivery_date"`
	Address            string         `json:"address,omitempty"`
	Venue              string         `json:"venue,omitempty"`
	VenueCharge        float64        `json:"venue_charge,omitempty"`
	Status             BookingStatus  `json:"status"`
	PaymentStatus      PaymentStatus  `json:"payment_status"`
	DepositAmount      float64        `json:"deposit_amount"`
	OrderDate          time.Time      `json:"order_date"`
	AdminNotes         string         `json:"admin_notes,omitempty"`
	CancellationReason string         `json:"cancellation_reason,omitempty"`
	IsDeleted          bool           `json:"is_deleted"`
}

// BookingRequest is everything needed to freeze a booking: the selection is
// validated and priced server-side, never trusted from the client.
type BookingRequest struct {
	DefinitionID  string       `json:"definition_id"`
	IsCustomOrder bool         `json:"is_custom_order"`
	Selection     Selection    `json:"selection"`
	Attendees     int          `json:"attendees"`
	Customer      Customer     `json:"customer"`
	DeliveryType  DeliveryType `json:"delivery_type"`
	DeliveryDate  time.Time    `json:"delivery_date"`
	Address       string       `json:"address,omitempty"`
	LocationName  string       `json:"location_name,omitempty"`
	CouponCode    string       `json:"coupon_code,omitempty"`
}

// BookingUpdate carries the operator-editable fields. Nil pointers leave
// the stored value untouched.
type BookingUpdate struct {
	Customer      *Customer       `json:"customer,omitempty"`
	DeliveryType  *DeliveryType   `json:"delivery_type,omitempty"`
	DeliveryDate  *time.Time      `json:"delivery_date,omitempty"`
	Address       *string         `json:"address,omitempty"`
	SelectedItems []BookingItem   `json:"selected_items,omitempty"`
	Pricing       *PriceBreakdown `json:"pricing,omitempty"`
	AdminNotes    *string         `json:"admin_notes,omitempty"`
}
