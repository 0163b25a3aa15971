package pricing

import "freightdesk/internal/domain/entities"

// Selector extracts one comparison dimension from an option. Totals are
// recomputed from the frozen selection so comparison and display can never
// disagree with the aggregator.
type Selector func(entities.Option) float64

func HaulageCost(o entities.Option) float64 {
	return Price(o.Selection).HaulageTotal
}

func SeafreightCost(o entities.Option) float64 {
	return Price(o.Selection).SeafreightTotal
}

func MiscCost(o entities.Option) float64 {
	return Price(o.Selection).MiscTotal
}

func SellPrice(o entities.Option) float64 {
	return Price(o.Selection).SellPrice
}

// BestIndex returns the index of the option with the lowest value for the
// given dimension, or -1 when there is no distinguished winner: fewer than
// two options, or all values equal. Lowest wins because this is a buyer-side
// cost comparison, not a profit comparison.
func BestIndex(opts []entities.Option, selector Selector) int {
	if len(opts) < 2 {
		return -1
	}

	values := make([]float64, len(opts))
	for i, o := range opts {
		values[i] = selector(o)
	}

	allEqual := true
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] != values[0] {
			allEqual = false
		}
		if values[i] < values[best] {
			best = i
		}
	}
	if allEqual {
		return -1
	}
	return best
}

// BestBySellPrice picks the overall winner for the comparison table. The
// buyer-facing view is intentionally margin-blind: only the sell price the
// customer would pay is ranked.
func BestBySellPrice(opts []entities.Option) int {
	return BestIndex(opts, SellPrice)
}

// Comparison holds the per-dimension winner indexes driving the "best price"
// row highlighting of the 2-or-3-way view. -1 means no winner for that row.
type Comparison struct {
	BestHaulage    int `json:"best_haulage"`
	BestSeafreight int `json:"best_seafreight"`
	BestMisc       int `json:"best_misc"`
	BestOverall    int `json:"best_overall"`
}

// Compare ranks the options on every dimension independently.
func Compare(opts []entities.Option) Comparison {
	return Comparison{
		BestHaulage:    BestIndex(opts, HaulageCost),
		BestSeafreight: BestIndex(opts, SeafreightCost),
		BestMisc:       BestIndex(opts, MiscCost),
		BestOverall:    BestBySellPrice(opts),
	}
}
