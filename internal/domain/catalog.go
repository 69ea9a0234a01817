package domain

import "time"

type ItemCategory string

const (
	CategoryEntree   ItemCategory = "entree"
	CategoryMains    ItemCategory = "mains"
	CategoryDesserts ItemCategory = "desserts"
	CategorySides    ItemCategory = "sides"
	CategoryBeverage ItemCategory = "beverages"
	CategoryAddons   ItemCategory = "addons"
)

// CatalogItem is a reusable named food item referenced by categorized
// packages. Bookings store a denormalized copy, never a live reference.
type CatalogItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	UnitPrice    float64      `json:"unit_price"`
	Category     ItemCategory `json:"category"`
	IsVegetarian bool         `json:"is_vegetarian"`
	IsVegan      bool         `json:"is_vegan"`
	Allergens    []string     `json:"allergens,omitempty"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ServiceRecord is the slice of the service directory the pricing engine
// needs: the function-venue flag and its venue options. Resolved by the
// caller, treated as read-only here.
type ServiceRecord struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	IsFunction   bool          `json:"is_function"`
	VenueOptions []VenueOption `json:"venue_options,omitempty"`
}

type VenueOption struct {
	Key             string  `json:"key"` // both | indoor | outdoor
	VenueCharge     float64 `json:"venue_charge"`
	ChargeThreshold int     `json:"charge_threshold"`
}

func (s *ServiceRecord) VenueOption(key string) *VenueOption {
	for i := range s.VenueOptions {
		if s.VenueOptions[i].Key == key {
			return &s.VenueOptions[i]
		}
	}
	return nil
}
