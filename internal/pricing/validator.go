package pricing

import (
	"fmt"

	"catering-platform/internal/domain"
)

// Validate checks a customer's selection against a definition's structural
// constraints. It accumulates every violation rather than stopping at the
// first; callers may surface only the first to the end user.
func Validate(def *domain.Definition, sel *domain.Selection, attendees int) domain.ValidationResult {
	result := domain.ValidationResult{OK: true}

	if attendees < 1 {
		result.Add("attendee count must be at least 1")
	}
	if def.MinAttendees > 0 && attendees < def.MinAttendees {
		result.Add(fmt.Sprintf("attendee count %d is below the minimum of %d", attendees, def.MinAttendees))
	}
	if def.MaxAttendees > 0 && attendees > def.MaxAttendees {
		result.Add(fmt.Sprintf("attendee count %d exceeds the maximum of %d", attendees, def.MaxAttendees))
	}

	switch def.Kind {
	case domain.KindCategorized:
		validateGroups(def, sel, &result)
	case domain.KindSimple:
		validateSimpleItems(def, sel, &result)
	case domain.KindCustom:
		validateCustomItems(def, sel, &result)
	}

	validateAddons(&def.Addons, sel, &result)
	return result
}

func validateGroups(def *domain.Definition, sel *domain.Selection, result *domain.ValidationResult) {
	for _, cat := range def.Categories {
		if !cat.Enabled {
			continue
		}
		for _, group := range cat.SelectionGroups {
			key := domain.GroupKey(cat.Name, group.Name)
			chosen := sel.Groups[key]

			if group.IsRequired && len(chosen) == 0 {
				result.Add(fmt.Sprintf("a selection is required for %q in category %q", group.Name, cat.Name))
				continue
			}
			if group.SelectionType == domain.SelectSingle && len(chosen) > 1 {
				result.Add(fmt.Sprintf("only one selection is allowed for %q, got %d", group.Name, len(chosen)))
			}
			if group.SelectionType == domain.SelectMultiple && group.MaxSelections > 0 && len(chosen) > group.MaxSelections {
				result.Add(fmt.Sprintf("at most %d selections are allowed for %q, got %d", group.MaxSelections, group.Name, len(chosen)))
			}
			if group.MinSelections > 0 && len(chosen) > 0 && len(chosen) < group.MinSelections {
				result.Add(fmt.Sprintf("at least %d selections are required for %q, got %d", group.MinSelections, group.Name, len(chosen)))
			}
			for _, name := range chosen {
				item := group.Item(name)
				if item == nil {
					result.Add(fmt.Sprintf("item %q is not part of %q", name, group.Name))
					continue
				}
				if !item.IsAvailable {
					result.Add(fmt.Sprintf("item %q is not available", item.Name))
				}
			}
		}
	}
}

func validateSimpleItems(def *domain.Definition, sel *domain.Selection, result *domain.ValidationResult) {
	for _, pick := range sel.Items {
		if pick.Index < 0 || pick.Index >= len(def.SimpleItems) {
			result.Add(fmt.Sprintf("item index %d does not exist", pick.Index))
			continue
		}
		item := def.SimpleItems[pick.Index]
		if pick.Choice != nil {
			if !item.HasChoices || *pick.Choice < 0 || *pick.Choice >= len(item.Choices) {
				result.Add(fmt.Sprintf("choice %d is out of range for item %q", *pick.Choice, item.Name))
			}
		}
		for _, opt := range pick.Options {
			if opt < 0 || opt >= len(item.Options) {
				result.Add(fmt.Sprintf("option %d is out of range for item %q", opt, item.Name))
			}
		}
	}
}

func validateCustomItems(def *domain.Definition, sel *domain.Selection, result *domain.ValidationResult) {
	for _, pick := range sel.Items {
		item := findCustomItem(def, pick.ItemID)
		if item == nil {
			result.Add(fmt.Sprintf("item %q does not exist", pick.ItemID))
			continue
		}
		if !item.IsAvailable {
			result.Add(fmt.Sprintf("item %q is not available", item.Name))
		}
		for _, opt := range pick.Options {
			if opt < 0 || opt >= len(item.Options) {
				result.Add(fmt.Sprintf("option %d is out of range for item %q", opt, item.Name))
			}
		}
	}
}

func findCustomItem(def *domain.Definition, id string) *domain.MenuItem {
	for ci := range def.Categories {
		cat := &def.Categories[ci]
		if !cat.Enabled {
			continue
		}
		for ii := range cat.IncludedItems {
			item := &cat.IncludedItems[ii]
			if item.ItemID == id || item.Name == id {
				return item
			}
		}
	}
	return nil
}

func validateAddons(addons *domain.AddonSet, sel *domain.Selection, result *domain.ValidationResult) {
	for _, name := range sel.FixedAddons {
		addon := addons.FixedAddon(name)
		if addon == nil {
			result.Add(fmt.Sprintf("addon %q does not exist", name))
			continue
		}
		if !addon.IsAvailable {
			result.Add(fmt.Sprintf("addon %q is not available", name))
		}
	}
	for _, pick := range sel.VariableAddons {
		addon := addons.VariableAddon(pick.Name)
		if addon == nil {
			result.Add(fmt.Sprintf("addon %q does not exist", pick.Name))
			continue
		}
		if !addon.IsAvailable {
			result.Add(fmt.Sprintf("addon %q is not available", pick.Name))
		}
		if pick.Quantity < addon.MinQuantity || pick.Quantity > addon.MaxQuantity {
			result.Add(fmt.Sprintf("quantity %d for addon %q must be between %d and %d",
				pick.Quantity, pick.Name, addon.MinQuantity, addon.MaxQuantity))
		}
	}
}
