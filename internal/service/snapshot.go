package service

import (
	"catering-platform/internal/domain"
)

// buildSnapshot copies the sold menu into the booking. Copying, never
// referencing, keeps later catalog edits away from placed orders.
func buildSnapshot(def *domain.Definition, svc *domain.ServiceRecord, input *domain.BookingRequest) domain.MenuSnapshot {
	snapshot := domain.MenuSnapshot{
		Name:         def.Name,
		BasePrice:    def.BasePrice,
		LocationID:   def.LocationID,
		LocationName: input.LocationName,
		ServiceID:    def.ServiceID,
	}
	if !input.IsCustomOrder {
		snapshot.PackageID = def.ID
	}
	if svc != nil {
		snapshot.ServiceName = svc.Name
	}
	return snapshot
}

// buildBookingItems denormalizes the validated selection into frozen line
// items: included category items, the customer's group/item picks, then
// addons.
func buildBookingItems(def *domain.Definition, sel *domain.Selection) []domain.BookingItem {
	var items []domain.BookingItem

	switch def.Kind {
	case domain.KindCategorized:
		for _, cat := range def.Categories {
			if !cat.Enabled {
				continue
			}
			for _, item := range cat.IncludedItems {
				items = append(items, menuBookingItem(item, cat.Name, domain.ItemIncluded))
			}
			for _, group := range cat.SelectionGroups {
				for _, name := range sel.Groups[domain.GroupKey(cat.Name, group.Name)] {
					if item := group.Item(name); item != nil {
						items = append(items, menuBookingItem(*item, cat.Name, domain.ItemSelected))
					}
				}
			}
		}
	case domain.KindSimple:
		items = append(items, simpleBookingItems(def, sel)...)
	case domain.KindCustom:
		for _, pick := range sel.Items {
			item := findCustomMenuItem(def, pick.ItemID)
			if item == nil {
				continue
			}
			entry := menuBookingItem(*item, customItemCategory(def, pick.ItemID), domain.ItemSelected)
			entry.Price = item.PricePerPerson + item.PriceModifier
			for _, opt := range pick.Options {
				if opt >= 0 && opt < len(item.Options) {
					entry.Price += item.Options[opt].PriceModifier
					entry.Name += " + " + item.Options[opt].Name
				}
			}
			items = append(items, entry)
		}
	}

	for _, name := range sel.FixedAddons {
		if addon := def.Addons.FixedAddon(name); addon != nil {
			items = append(items, domain.BookingItem{
				Name:         addon.Name,
				Category:     string(domain.CategoryAddons),
				Type:         domain.ItemAddon,
				Price:        addon.PricePerPerson,
				Quantity:     1,
				IsVegetarian: addon.IsVegetarian,
				IsVegan:      addon.IsVegan,
			})
		}
	}
	for _, pick := range sel.VariableAddons {
		if addon := def.Addons.VariableAddon(pick.Name); addon != nil {
			items = append(items, domain.BookingItem{
				Name:         addon.Name,
				Category:     string(domain.CategoryAddons),
				Type:         domain.ItemAddon,
				Price:        addon.PricePerUnit * float64(pick.Quantity),
				PricePerUnit: addon.PricePerUnit,
				Quantity:     pick.Quantity,
			})
		}
	}

	return items
}

func menuBookingItem(item domain.MenuItem, category string, itemType domain.BookingItemType) domain.BookingItem {
	return domain.BookingItem{
		Name:         item.Name,
		Description:  item.Description,
		Category:     category,
		Type:         itemType,
		Price:        item.PriceModifier,
		Quantity:     1,
		IsVegetarian: item.IsVegetarian,
		IsVegan:      item.IsVegan,
	}
}

func simpleBookingItems(def *domain.Definition, sel *domain.Selection) []domain.BookingItem {
	picks := make(map[int]domain.ItemSelection, len(sel.Items))
	for _, pick := range sel.Items {
		picks[pick.Index] = pick
	}

	items := make([]domain.BookingItem, 0, len(def.SimpleItems))
	for i, item := range def.SimpleItems {
		entry := domain.BookingItem{
			Name:     item.Name,
			Type:     domain.ItemIncluded,
			Price:    item.PriceModifier,
			Quantity: item.Quantity,
		}
		if entry.Quantity == 0 {
			entry.Quantity = 1
		}
		if pick, ok := picks[i]; ok {
			if pick.Choice != nil && *pick.Choice >= 0 && *pick.Choice < len(item.Choices) {
				choice := item.Choices[*pick.Choice]
				entry.Name += " (" + choice.Name + ")"
				entry.Price += choice.PriceModifier
				entry.Type = domain.ItemSelected
			}
			for _, opt := range pick.Options {
				if opt >= 0 && opt < len(item.Options) {
					entry.Name += " + " + item.Options[opt].Name
					entry.Price += item.Options[opt].PriceModifier
				}
			}
		}
		items = append(items, entry)
	}
	return items
}

func findCustomMenuItem(def *domain.Definition, id string) *domain.MenuItem {
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

func customItemCategory(def *domain.Definition, id string) string {
	for _, cat := range def.Categories {
		if !cat.Enabled {
			continue
		}
		for _, item := range cat.IncludedItems {
			if item.ItemID == id || item.Name == id {
				return cat.Name
			}
		}
	}
	return ""
}
