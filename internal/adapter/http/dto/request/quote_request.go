package request

import "strings"

// OpenSessionRequest starts a wizard session: empty for a blank quote, with a
// request id when opened from a source quote request, or with a draft id to
// resume a persisted draft.
type OpenSessionRequest struct {
	RequestID string `json:"request_id"`
	DraftID   string `json:"draft_id"`
}

type CustomerRequest struct {
	ContactID   string `json:"contact_id"`
	Name        string `json:"name"`
	Email       string `json:"email" binding:"omitempty,email"`
	CompanyName string `json:"company_name"`
}

type ShipmentRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Incoterm    string `json:"incoterm"`
	Commodity   string `json:"commodity"`
}

// HaulageSelectionRequest picks one trucking offer by catalog id. The flat
// add-ons are opt-in: the offer's overtime/multi-stop tariffs apply only when
// requested.
type HaulageSelectionRequest struct {
	OfferID       string `json:"offer_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"omitempty,min=0"`
	WithOvertime  bool   `json:"with_overtime"`
	WithMultiStop bool   `json:"with_multi_stop"`
}

// SeafreightContainerRequest picks one ocean offer by catalog id, with the
// operator's quantity override and per-surcharge quantity overrides keyed by
// surcharge name.
type SeafreightContainerRequest struct {
	OfferID             string         `json:"offer_id" binding:"required"`
	Quantity            int            `json:"quantity" binding:"omitempty,min=0"`
	SurchargeQuantities map[string]int `json:"surcharge_quantities"`
}

type SeafreightListRequest struct {
	Containers []SeafreightContainerRequest `json:"containers" binding:"required,min=1,dive"`
}

type ServiceRequest struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name" binding:"required"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity" binding:"omitempty,min=0"`
}

type MiscellaneousRequest struct {
	Services []ServiceRequest `json:"services" binding:"dive"`
}

type MarginRequest struct {
	MarginType  string  `json:"margin_type" binding:"required,oneof=percent fixed"`
	MarginValue float64 `json:"margin_value"`
}

type FinalizeRequest struct {
	OptionIndex *int `json:"option_index" binding:"required"`
}

func (r OpenSessionRequest) ResolveRequestID() string {
	return strings.TrimSpace(r.RequestID)
}

func (r OpenSessionRequest) ResolveDraftID() string {
	return strings.TrimSpace(r.DraftID)
}
