package pricing

import (
	"math"

	"catering-platform/internal/domain"
)

// RoundCents rounds half-up to the smallest currency unit. Every monetary
// result in the engine and on a booking goes through this.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Price turns a validated selection and headcount into a price breakdown.
// Pure and deterministic; the caller resolves the service record (nil when
// the owning service is not a function venue).
func Price(def *domain.Definition, sel *domain.Selection, attendees int, svc *domain.ServiceRecord) domain.PriceBreakdown {
	breakdown := domain.PriceBreakdown{
		BasePrice: RoundCents(def.BasePrice * float64(attendees)),
	}

	switch def.Kind {
	case domain.KindCategorized:
		breakdown.ItemModifiers = categorizedModifiers(def, sel, attendees)
	case domain.KindSimple:
		breakdown.ItemModifiers = simpleModifiers(def, sel, attendees)
	case domain.KindCustom:
		breakdown.ItemModifiers = customItemTotal(def, sel, attendees)
	}

	for _, name := range sel.FixedAddons {
		if addon := def.Addons.FixedAddon(name); addon != nil {
			breakdown.FixedAddons += addon.PricePerPerson * float64(attendees)
		}
	}
	for _, pick := range sel.VariableAddons {
		if addon := def.Addons.VariableAddon(pick.Name); addon != nil {
			breakdown.VariableAddons += addon.PricePerUnit * float64(pick.Quantity)
		}
	}

	breakdown.VenueCharge = venueSurcharge(svc, sel.Venue, attendees)

	breakdown.ItemModifiers = RoundCents(breakdown.ItemModifiers)
	breakdown.FixedAddons = RoundCents(breakdown.FixedAddons)
	breakdown.VariableAddons = RoundCents(breakdown.VariableAddons)
	breakdown.Total = RoundCents(breakdown.BasePrice + breakdown.ItemModifiers +
		breakdown.FixedAddons + breakdown.VariableAddons + breakdown.VenueCharge)
	breakdown.PerAttendee = RoundCents(breakdown.Total / float64(attendees))
	return breakdown
}

// categorizedModifiers sums every included item's modifier in every enabled
// category plus every selected group item's modifier, each applied once per
// attendee, mirroring the base price's per-attendee scaling.
func categorizedModifiers(def *domain.Definition, sel *domain.Selection, attendees int) float64 {
	var sum float64
	for _, cat := range def.Categories {
		if !cat.Enabled {
			continue
		}
		for _, item := range cat.IncludedItems {
			sum += item.PriceModifier
		}
		for _, group := range cat.SelectionGroups {
			for _, name := range sel.Groups[domain.GroupKey(cat.Name, group.Name)] {
				if item := group.Item(name); item != nil {
					sum += item.PriceModifier
				}
			}
		}
	}
	return sum * float64(attendees)
}

// simpleModifiers sums each row's own modifier plus its selected choice and
// options. Rows with Quantity > 0 are fixed-unit and scale by Quantity;
// everything else scales by attendees.
func simpleModifiers(def *domain.Definition, sel *domain.Selection, attendees int) float64 {
	picks := make(map[int]domain.ItemSelection, len(sel.Items))
	for _, pick := range sel.Items {
		picks[pick.Index] = pick
	}

	var sum float64
	for i, item := range def.SimpleItems {
		mod := item.PriceModifier
		if pick, ok := picks[i]; ok {
			if pick.Choice != nil && *pick.Choice >= 0 && *pick.Choice < len(item.Choices) {
				mod += item.Choices[*pick.Choice].PriceModifier
			}
			for _, opt := range pick.Options {
				if opt >= 0 && opt < len(item.Options) {
					mod += item.Options[opt].PriceModifier
				}
			}
		}
		if item.Quantity > 0 {
			sum += mod * float64(item.Quantity)
		} else {
			sum += mod * float64(attendees)
		}
	}
	return sum
}

func customItemTotal(def *domain.Definition, sel *domain.Selection, attendees int) float64 {
	var sum float64
	for _, pick := range sel.Items {
		item := findCustomItem(def, pick.ItemID)
		if item == nil {
			continue
		}
		mod := item.PricePerPerson + item.PriceModifier
		for _, opt := range pick.Options {
			if opt >= 0 && opt < len(item.Options) {
				mod += item.Options[opt].PriceModifier
			}
		}
		sum += mod * float64(attendees)
	}
	return sum
}

// venueSurcharge applies only for function venue services: outdoor venues
// charge below their attendance threshold, indoor/both charge whenever a
// charge is configured.
func venueSurcharge(svc *domain.ServiceRecord, venue string, attendees int) float64 {
	if svc == nil || !svc.IsFunction || venue == "" {
		return 0
	}
	option := svc.VenueOption(venue)
	if option == nil {
		return 0
	}
	if venue == "outdoor" {
		if attendees < option.ChargeThreshold {
			return option.VenueCharge
		}
		return 0
	}
	if option.VenueCharge > 0 {
		return option.VenueCharge
	}
	return 0
}
