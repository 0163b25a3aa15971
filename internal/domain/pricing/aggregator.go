package pricing

import "freightdesk/internal/domain/entities"

// Aggregate reduces line items into the totals breakdown. It is the single
// source of truth for every displayed total; no other component re-derives
// cost, margin or sell price through a parallel path.
//
// Margin rules:
//   - percent: margin = costPrice * marginValue / 100, marginPercent = marginValue.
//   - fixed:   margin = marginValue, marginPercent re-derived from
//     margin / costPrice * 100 so value and percent never drift.
//   - costPrice == 0: marginPercent is 0, margin still follows the configured
//     marginValue.
func Aggregate(items []LineItem, marginType entities.MarginType, marginValue float64) entities.Totals {
	var t entities.Totals
	for _, it := range items {
		switch it.Category {
		case CategoryHaulage:
			t.HaulageTotal += it.Amount
		case CategorySeafreight:
			t.SeafreightTotal += it.Amount
		case CategoryMisc:
			t.MiscTotal += it.Amount
		}
	}
	t.CostPrice = t.HaulageTotal + t.SeafreightTotal + t.MiscTotal

	switch marginType {
	case entities.MarginTypeFixed:
		t.Margin = marginValue
	default:
		t.Margin = t.CostPrice * marginValue / 100
	}

	if t.CostPrice == 0 {
		t.MarginPercent = 0
	} else if marginType == entities.MarginTypeFixed {
		t.MarginPercent = t.Margin / t.CostPrice * 100
	} else {
		t.MarginPercent = marginValue
	}

	t.SellPrice = t.CostPrice + t.Margin
	return t
}

// Price resolves and aggregates a selection in one step.
func Price(sel entities.Selection) entities.Totals {
	return Aggregate(Resolve(sel), sel.MarginType, sel.MarginValue)
}
