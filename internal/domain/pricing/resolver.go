package pricing

import (
	"fmt"

	"freightdesk/internal/domain/entities"
)

// Resolve flattens a selection into priced line items. It is pure, performs
// no I/O and is total over any structurally valid selection: missing prices
// default to 0 and missing quantities to 1, so it never fails.
func Resolve(sel entities.Selection) []LineItem {
	var items []LineItem
	items = append(items, resolveHaulage(sel.Haulage)...)
	items = append(items, resolveSeafreights(sel)...)
	items = append(items, resolveMiscellaneous(sel)...)
	return items
}

func resolveHaulage(h *entities.HaulageSelection) []LineItem {
	if h == nil {
		return nil
	}

	qty := h.Quantity
	if qty <= 0 {
		qty = 1
	}

	items := []LineItem{{
		Category:    CategoryHaulage,
		Kind:        KindHaulageBase,
		Description: fmt.Sprintf("Haulage %s", h.OfferID),
		UnitPrice:   h.Tariff,
		Quantity:    qty,
		Amount:      float64(qty) * h.Tariff,
	}}

	// Overtime and multi-stop are flat add-ons: they never scale with the
	// haulage quantity.
	if h.OvertimeTariff > 0 {
		items = append(items, LineItem{
			Category:    CategoryHaulage,
			Kind:        KindHaulageOvertime,
			Description: "Haulage overtime",
			UnitPrice:   h.OvertimeTariff,
			Quantity:    1,
			Amount:      h.OvertimeTariff,
		})
	}
	if h.MultiStop > 0 {
		items = append(items, LineItem{
			Category:    CategoryHaulage,
			Kind:        KindHaulageMultiStop,
			Description: "Haulage multi-stop",
			UnitPrice:   h.MultiStop,
			Quantity:    1,
			Amount:      h.MultiStop,
		})
	}
	return items
}

func resolveSeafreights(sel entities.Selection) []LineItem {
	var items []LineItem
	for _, sf := range sel.Seafreights {
		qty := containerQuantity(sel, sf)
		items = append(items, LineItem{
			Category:    CategorySeafreight,
			Kind:        KindSeafreightContainer,
			Description: fmt.Sprintf("%s %s", sf.ContainerType, sf.OfferID),
			UnitPrice:   sf.BasePrice,
			Quantity:    qty,
			Amount:      float64(qty) * sf.BasePrice,
		})

		for _, sc := range sf.Surcharges {
			scQty := surchargeQuantity(sel, sf, sc, qty)
			items = append(items, LineItem{
				Category:    CategorySeafreight,
				Kind:        KindSeafreightSurcharge,
				Description: fmt.Sprintf("%s (%s)", sc.Name, sf.OfferID),
				UnitPrice:   sc.Value,
				Quantity:    scQty,
				Amount:      float64(scQty) * sc.Value,
			})
		}
	}
	return items
}

// containerQuantity resolves a container's quantity by priority: explicit
// per-offer override, then the selection's own default, then 1.
func containerQuantity(sel entities.Selection, sf entities.SeafreightSelection) int {
	if q, ok := sel.ContainerQuantities[sf.OfferID]; ok && q > 0 {
		return q
	}
	if sf.DefaultQuantity > 0 {
		return sf.DefaultQuantity
	}
	return 1
}

// surchargeQuantity resolves a surcharge's quantity independently of its
// container: explicit override keyed by (offer id, surcharge name), then the
// container's resolved quantity, then 1.
func surchargeQuantity(sel entities.Selection, sf entities.SeafreightSelection, sc entities.Surcharge, containerQty int) int {
	if q, ok := sel.SurchargeQuantities[entities.SurchargeQuantityKey(sf.OfferID, sc.Name)]; ok && q > 0 {
		return q
	}
	if containerQty > 0 {
		return containerQty
	}
	return 1
}

func resolveMiscellaneous(sel entities.Selection) []LineItem {
	var items []LineItem
	for i, svc := range sel.Miscellaneous {
		qty := serviceQuantity(sel, svc, i)
		items = append(items, LineItem{
			Category:    CategoryMisc,
			Kind:        KindMiscService,
			Description: svc.ServiceName,
			UnitPrice:   svc.Price,
			Quantity:    qty,
			Amount:      float64(qty) * svc.Price,
		})
	}
	return items
}

// serviceQuantity resolves a service's quantity through the id -> name ->
// synthetic-key lookup chain, then the selection default, then 1.
func serviceQuantity(sel entities.Selection, svc entities.ServiceSelection, position int) int {
	if svc.ServiceID != "" {
		if q, ok := sel.ServiceQuantities[svc.ServiceID]; ok && q > 0 {
			return q
		}
	}
	if svc.ServiceName != "" {
		if q, ok := sel.ServiceQuantities[svc.ServiceName]; ok && q > 0 {
			return q
		}
	}
	if q, ok := sel.ServiceQuantities[ServiceFallbackKey(svc, position)]; ok && q > 0 {
		return q
	}
	if svc.DefaultQuantity > 0 {
		return svc.DefaultQuantity
	}
	return 1
}

// ServiceFallbackKey derives a stable synthetic identity for a service that
// carries neither id nor a mapped name. The key is content-derived (category,
// name, position) so it never changes between two resolutions of the same
// selection.
func ServiceFallbackKey(svc entities.ServiceSelection, position int) string {
	return fmt.Sprintf("misc-%s-%d", svc.ServiceName, position)
}
