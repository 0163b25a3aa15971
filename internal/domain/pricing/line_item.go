package pricing

// Category groups line items into the three totals every screen displays.
type Category string

const (
	CategoryHaulage    Category = "haulage"
	CategorySeafreight Category = "seafreight"
	CategoryMisc       Category = "misc"
)

// Kind tags the concrete origin of a line item. Each kind carries its own
// quantity-resolution rule in the resolver, so the resolution logic stays
// exhaustive instead of probing optional fields.
type Kind string

const (
	KindHaulageBase         Kind = "haulage_base"
	KindHaulageOvertime     Kind = "haulage_overtime"
	KindHaulageMultiStop    Kind = "haulage_multi_stop"
	KindSeafreightContainer Kind = "seafreight_container"
	KindSeafreightSurcharge Kind = "seafreight_surcharge"
	KindMiscService         Kind = "misc_service"
)

// LineItem is one flat priced row produced by Resolve.
type LineItem struct {
	Category    Category `json:"category"`
	Kind        Kind     `json:"kind"`
	Description string   `json:"description"`
	UnitPrice   float64  `json:"unit_price"`
	Quantity    int      `json:"quantity"`
	Amount      float64  `json:"amount"`
}
