package entities

import "time"

// MarginType selects how the operator's margin is applied on top of the cost price.
type MarginType string

const (
	MarginTypePercent MarginType = "percent"
	MarginTypeFixed   MarginType = "fixed"
)

// DraftStatus represents the lifecycle of a draft quote.
//
// Domain notes:
//   - A draft stays editable until one of its options is promoted to a final
//     offer, at which point the aggregate becomes read-only.
type DraftStatus string

const (
	DraftStatusDraft     DraftStatus = "draft"
	DraftStatusFinalized DraftStatus = "finalized"
)

// MaxOptions caps how many priced alternatives a draft may carry.
const MaxOptions = 3

// Customer identifies who the quote is being assembled for. Not priced.
type Customer struct {
	ContactID   string `json:"contact_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
}

// Shipment describes the transported goods and route endpoints. Not priced.
type Shipment struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Incoterm    string `json:"incoterm"`
	Commodity   string `json:"commodity"`
}

// HaulageSelection is the trucking leg: one unit tariff times quantity, plus
// flat overtime/multi-stop add-ons that do not scale with quantity.
type HaulageSelection struct {
	OfferID        string  `json:"offer_id"`
	Tariff         float64 `json:"tariff"`
	Quantity       int     `json:"quantity"`
	OvertimeTariff float64 `json:"overtime_tariff"`
	MultiStop      float64 `json:"multi_stop"`
}

// Surcharge is one named extra on a seafreight container. Its quantity is
// resolved independently of the container's.
type Surcharge struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SeafreightSelection is one container line of the ocean leg.
type SeafreightSelection struct {
	OfferID         string      `json:"offer_id"`
	Carrier         string      `json:"carrier"`
	ContainerType   string      `json:"container_type"`
	TEU             int         `json:"teu"`
	BasePrice       float64     `json:"base_price"`
	DefaultQuantity int         `json:"default_quantity"`
	Surcharges      []Surcharge `json:"surcharges"`
}

// ServiceSelection is one ancillary service priced per unit.
type ServiceSelection struct {
	ServiceID       string  `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	Price           float64 `json:"price"`
	DefaultQuantity int     `json:"default_quantity"`
}

// Selection groups every pricing-relevant field of a draft. Options freeze a
// copy of this block, so the same struct backs both the working draft and its
// snapshots.
//
// Quantity maps hold explicit operator overrides:
//   - ContainerQuantities is keyed by seafreight offer id.
//   - SurchargeQuantities is keyed by SurchargeQuantityKey(offerID, name).
//   - ServiceQuantities is keyed by service id, service name, or the stable
//     synthetic key the resolver derives for services missing both.
type Selection struct {
	Haulage             *HaulageSelection     `json:"haulage,omitempty"`
	Seafreights         []SeafreightSelection `json:"seafreights"`
	Miscellaneous       []ServiceSelection    `json:"miscellaneous"`
	ContainerQuantities map[string]int        `json:"container_quantities,omitempty"`
	SurchargeQuantities map[string]int        `json:"surcharge_quantities,omitempty"`
	ServiceQuantities   map[string]int        `json:"service_quantities,omitempty"`
	MarginType          MarginType            `json:"margin_type"`
	MarginValue         float64               `json:"margin_value"`
}

// SurchargeQuantityKey builds the composite override key for one surcharge on
// one seafreight offer.
func SurchargeQuantityKey(offerID, surchargeName string) string {
	return offerID + "|" + surchargeName
}

// Totals is the derived pricing breakdown. It is never persisted as a source
// of truth for the working draft; every screen recomputes it.
type Totals struct {
	HaulageTotal    float64 `json:"haulage_total"`
	SeafreightTotal float64 `json:"seafreight_total"`
	MiscTotal       float64 `json:"misc_total"`
	CostPrice       float64 `json:"cost_price"`
	Margin          float64 `json:"margin"`
	MarginPercent   float64 `json:"margin_percent"`
	SellPrice       float64 `json:"sell_price"`
}

// Option is one of up to three priced alternatives attached to a draft: a
// frozen copy of the pricing-relevant fields plus the totals computed at
// snapshot time.
type Option struct {
	Label     string    `json:"label"`
	Selection Selection `json:"selection"`
	Totals    Totals    `json:"totals"`
	CreatedAt time.Time `json:"created_at"`
}

// DraftQuote is the aggregate root: one in-progress quote being assembled by
// the wizard.
//
// Identity:
//   - RequestID references the source quote request, when the wizard was
//     opened from one.
//   - ID is assigned by the persistence layer on the first successful create;
//     an empty ID means the draft has never been durably saved.
type DraftQuote struct {
	ID        string      `json:"id"`
	RequestID string      `json:"request_id"`
	Customer  Customer    `json:"customer"`
	Shipment  Shipment    `json:"shipment"`
	Selection Selection   `json:"selection"`
	Options   []Option    `json:"options"`
	Status    DraftStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Finalized reports whether the draft has been promoted to a final offer and
// is therefore read-only.
func (d DraftQuote) Finalized() bool {
	return d.Status == DraftStatusFinalized
}

// Clone returns a deep copy of the selection, so a snapshot cannot be mutated
// through the working draft's maps and slices.
func (s Selection) Clone() Selection {
	out := s
	if s.Haulage != nil {
		h := *s.Haulage
		out.Haulage = &h
	}
	if s.Seafreights != nil {
		out.Seafreights = make([]SeafreightSelection, len(s.Seafreights))
		for i, sf := range s.Seafreights {
			c := sf
			if sf.Surcharges != nil {
				c.Surcharges = make([]Surcharge, len(sf.Surcharges))
				copy(c.Surcharges, sf.Surcharges)
			}
			out.Seafreights[i] = c
		}
	}
	if s.Miscellaneous != nil {
		out.Miscellaneous = make([]ServiceSelection, len(s.Miscellaneous))
		copy(out.Miscellaneous, s.Miscellaneous)
	}
	out.ContainerQuantities = cloneIntMap(s.ContainerQuantities)
	out.SurchargeQuantities = cloneIntMap(s.SurchargeQuantities)
	out.ServiceQuantities = cloneIntMap(s.ServiceQuantities)
	return out
}

// Clone returns a deep copy of the aggregate. Save operations dispatch the
// copy so the payload reflects the draft exactly as it was at dispatch time.
func (d DraftQuote) Clone() DraftQuote {
	out := d
	out.Selection = d.Selection.Clone()
	if d.Options != nil {
		out.Options = make([]Option, len(d.Options))
		for i, o := range d.Options {
			c := o
			c.Selection = o.Selection.Clone()
			out.Options[i] = c
		}
	}
	return out
}

func cloneIntMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
