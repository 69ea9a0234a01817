package domain

import "fmt"

type DefinitionKind string

const (
	KindCategorized DefinitionKind = "categorized"
	KindSimple      DefinitionKind = "simple"
	KindCustom      DefinitionKind = "custom"
)

// CustomCategories is the closed set of category names a custom-order
// configuration may use.
var CustomCategories = []string{"entree", "mains", "desserts", "sides", "beverages"}

// Definition is a sellable configuration: a categorized package of catalog
// items, a simple package of flat inline items, or a custom-order catalog
// scoped to a location+service pair. One validator and one price calculator
// serve all three kinds.
type Definition struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	ServiceID    string         `json:"service_id"`
	LocationID   string         `json:"location_id"`
	Description  string         `json:"description"`
	BasePrice    float64        `json:"base_price"` // per attendee; 0 for custom orders
	MinAttendees int            `json:"min_attendees"`
	MaxAttendees int            `json:"max_attendees"`
	Kind         DefinitionKind `json:"kind"`
	Categories   []Category     `json:"categories,omitempty"`   // categorized, custom
	SimpleItems  []SimpleItem   `json:"simple_items,omitempty"` // simple
	Addons       AddonSet       `json:"addons"`
	IsActive     bool           `json:"is_active"`
}

type Category struct {
	Name            string           `json:"name"`
	Enabled         bool             `json:"enabled"`
	IncludedItems   []MenuItem       `json:"included_items,omitempty"`
	SelectionGroups []SelectionGroup `json:"selection_groups,omitempty"`
}

// MenuItem is an entry inside a category or selection group. Categorized
// packages reference a catalog item and carry a per-attendee price modifier;
// custom-order configurations carry an inline price per person instead.
type MenuItem struct {
	ItemID         string       `json:"item_id,omitempty"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	PriceModifier  float64      `json:"price_modifier"`
	PricePerPerson float64      `json:"price_per_person,omitempty"` // custom orders only
	IsVegetarian   bool         `json:"is_vegetarian"`
	IsVegan        bool         `json:"is_vegan"`
	IsAvailable    bool         `json:"is_available"`
	Options        []ItemOption `json:"options,omitempty"`
}

type SelectionType string

const (
	SelectSingle   SelectionType = "single"
	SelectMultiple SelectionType = "multiple"
)

type SelectionGroup struct {
	Name          string        `json:"name"`
	Items         []MenuItem    `json:"items"`
	SelectionType SelectionType `json:"selection_type"`
	MinSelections int           `json:"min_selections"`
	MaxSelections int           `json:"max_selections"`
	IsRequired    bool          `json:"is_required"`
}

func (g *SelectionGroup) Item(name string) *MenuItem {
	for i := range g.Items {
		if g.Items[i].Name == name || (g.Items[i].ItemID != "" && g.Items[i].ItemID == name) {
			return &g.Items[i]
		}
	}
	return nil
}

// SimpleItem is a row of a simple (flat) package. Quantity > 0 marks a
// fixed-unit item whose modifiers scale by Quantity instead of attendees.
type SimpleItem struct {
	Name          string       `json:"name"`
	PriceModifier float64      `json:"price_modifier"`
	Quantity      int          `json:"quantity"`
	HasChoices    bool         `json:"has_choices"`
	Choices       []ItemOption `json:"choices,omitempty"`
	Options       []ItemOption `json:"options,omitempty"`
}

type ItemOption struct {
	Name          string  `json:"name"`
	PriceModifier float64 `json:"price_modifier"`
}

type AddonSet struct {
	Enabled        bool            `json:"enabled"`
	FixedAddons    []FixedAddon    `json:"fixed_addons,omitempty"`
	VariableAddons []VariableAddon `json:"variable_addons,omitempty"`
}

// FixedAddon is priced per attendee.
type FixedAddon struct {
	Name           string  `json:"name"`
	PricePerPerson float64 `json:"price_per_person"`
	IsVegetarian   bool    `json:"is_vegetarian"`
	IsVegan        bool    `json:"is_vegan"`
	IsAvailable    bool    `json:"is_available"`
}

// VariableAddon is priced per chosen unit quantity, bounded by min/max.
type VariableAddon struct {
	Name         string  `json:"name"`
	PricePerUnit float64 `json:"price_per_unit"`
	Unit         string  `json:"unit"`
	MinQuantity  int     `json:"min_quantity"`
	MaxQuantity  int     `json:"max_quantity"`
	IsAvailable  bool    `json:"is_available"`
}

func (a *AddonSet) FixedAddon(name string) *FixedAddon {
	for i := range a.FixedAddons {
		if a.FixedAddons[i].Name == name {
			return &a.FixedAddons[i]
		}
	}
	return nil
}

func (a *AddonSet) VariableAddon(name string) *VariableAddon {
	for i := range a.VariableAddons {
		if a.VariableAddons[i].Name == name {
			return &a.VariableAddons[i]
		}
	}
	return nil
}

// CheckStructure verifies the definition's own invariants. A failure here is
// bad catalog data, not a customer mistake, so it surfaces as a plain error
// the caller treats as fatal.
func (d *Definition) CheckStructure() error {
	if d.MinAttendees > d.MaxAttendees {
		return fmt.Errorf("definition %s: min attendees %d exceeds max %d", d.ID, d.MinAttendees, d.MaxAttendees)
	}
	switch d.Kind {
	case KindCategorized, KindCustom:
		for _, cat := range d.Categories {
			if !cat.Enabled {
				continue
			}
			if len(cat.IncludedItems) == 0 && !hasNonEmptyGroup(cat.SelectionGroups) {
				return fmt.Errorf("definition %s: enabled category %q has no items and no selection groups", d.ID, cat.Name)
			}
		}
	case KindSimple:
		for i, item := range d.SimpleItems {
			if item.Name == "" {
				return fmt.Errorf("definition %s: simple item %d has an empty name", d.ID, i)
			}
		}
	default:
		return fmt.Errorf("definition %s: unknown kind %q", d.ID, d.Kind)
	}
	return nil
}

func hasNonEmptyGroup(groups []SelectionGroup) bool {
	for _, g := range groups {
		if len(g.Items) > 0 {
			return true
		}
	}
	return false
}
