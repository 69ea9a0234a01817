package domain

// Selection is the customer's raw payload checked against a Definition.
// Group keys follow "<category>:<group>" so two categories may carry groups
// with the same name.
type Selection struct {
	Groups         map[string][]string `json:"groups,omitempty"`          // categorized: group key -> chosen item names
	Items          []ItemSelection     `json:"items,omitempty"`           // simple / custom
	FixedAddons    []string            `json:"fixed_addons,omitempty"`    // addon names
	VariableAddons []AddonSelection    `json:"variable_addons,omitempty"` // addon name + chosen quantity
	Venue          string              `json:"venue,omitempty"`           // both | indoor | outdoor
}

// ItemSelection points at a simple-package row by index, or at a
// custom-order item by id. Choice and option indices refer to the item's
// own choice/option lists.
type ItemSelection struct {
	ItemID  string `json:"item_id,omitempty"` // custom orders
	Index   int    `json:"index"`             // simple packages
	Choice  *int   `json:"choice,omitempty"`
	Options []int  `json:"options,omitempty"`
}

type AddonSelection struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// GroupKey builds the canonical key for a selection group.
func GroupKey(category, group string) string {
	return category + ":" + group
}

// PriceBreakdown keeps every pricing component separate; bookings persist
// and display it as-is.
type PriceBreakdown struct {
	BasePrice      float64 `json:"base_price"`
	ItemModifiers  float64 `json:"item_modifiers"`
	FixedAddons    float64 `json:"fixed_addons"`
	VariableAddons float64 `json:"variable_addons"`
	VenueCharge    float64 `json:"venue_charge"`
	Total          float64 `json:"total"`
	PerAttendee    float64 `json:"per_attendee"`
}

// AddonsPrice is the combined addon contribution shown on bookings.
func (p PriceBreakdown) AddonsPrice() float64 {
	return p.FixedAddons + p.VariableAddons
}

// ValidationResult accumulates every violated rule; callers decide whether
// to surface one or all of them.
type ValidationResult struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors,omitempty"`
}

func (r *ValidationResult) Add(msg string) {
	r.OK = false
	r.Errors = append(r.Errors, msg)
}
