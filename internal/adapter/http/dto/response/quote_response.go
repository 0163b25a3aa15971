package response

import (
	"time"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/domain/pricing"
	"freightdesk/internal/usecase"
)

type TotalsResponse struct {
	HaulageTotal    float64 `json:"haulage_total"`
	SeafreightTotal float64 `json:"seafreight_total"`
	MiscTotal       float64 `json:"misc_total"`
	CostPrice       float64 `json:"cost_price"`
	Margin          float64 `json:"margin"`
	MarginPercent   float64 `json:"margin_percent"`
	SellPrice       float64 `json:"sell_price"`
}

func FromTotals(t entities.Totals) TotalsResponse {
	return TotalsResponse{
		HaulageTotal:    t.HaulageTotal,
		SeafreightTotal: t.SeafreightTotal,
		MiscTotal:       t.MiscTotal,
		CostPrice:       t.CostPrice,
		Margin:          t.Margin,
		MarginPercent:   t.MarginPercent,
		SellPrice:       t.SellPrice,
	}
}

type OptionResponse struct {
	Label     string         `json:"label"`
	Totals    TotalsResponse `json:"totals"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromOption(o entities.Option) OptionResponse {
	return OptionResponse{
		Label:     o.Label,
		Totals:    FromTotals(o.Totals),
		CreatedAt: o.CreatedAt,
	}
}

// SessionResponse is the full wizard view of one session: the aggregate plus
// freshly recomputed totals. Totals always come from the aggregator, never
// from stored fields.
type SessionResponse struct {
	SessionID string              `json:"session_id"`
	Draft     entities.DraftQuote `json:"draft"`
	Totals    TotalsResponse      `json:"totals"`
	Options   []OptionResponse    `json:"options"`
}

func FromSession(sessionID string, draft entities.DraftQuote, totals entities.Totals) SessionResponse {
	resp := SessionResponse{
		SessionID: sessionID,
		Draft:     draft,
		Totals:    FromTotals(totals),
	}
	for _, o := range draft.Options {
		resp.Options = append(resp.Options, FromOption(o))
	}
	return resp
}

type SessionOpenedResponse struct {
	SessionID string `json:"session_id"`
	DraftID   string `json:"draft_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type SyncStatusResponse struct {
	State         string    `json:"state"`
	Dirty         bool      `json:"dirty"`
	LastSavedAt   time.Time `json:"last_saved_at,omitzero"`
	TimeSinceSave string    `json:"time_since_save"`
	Error         string    `json:"error,omitempty"`
	CanSave       bool      `json:"can_save"`
}

func FromSyncStatus(st usecase.SyncStatus) SyncStatusResponse {
	return SyncStatusResponse{
		State:         string(st.State),
		Dirty:         st.Dirty,
		LastSavedAt:   st.LastSavedAt,
		TimeSinceSave: st.TimeSinceSave,
		Error:         st.Error,
		CanSave:       st.CanSave,
	}
}

// ComparisonResponse drives the side-by-side view: per-dimension winner
// indexes (-1 when no winner) and the recomputed totals of every option.
type ComparisonResponse struct {
	BestHaulage    int              `json:"best_haulage"`
	BestSeafreight int              `json:"best_seafreight"`
	BestMisc       int              `json:"best_misc"`
	BestOverall    int              `json:"best_overall"`
	Options        []OptionResponse `json:"options"`
}

func FromComparison(cmp pricing.Comparison, opts []entities.Option) ComparisonResponse {
	resp := ComparisonResponse{
		BestHaulage:    cmp.BestHaulage,
		BestSeafreight: cmp.BestSeafreight,
		BestMisc:       cmp.BestMisc,
		BestOverall:    cmp.BestOverall,
	}
	for _, o := range opts {
		r := FromOption(o)
		// Displayed comparison rows use the same recomputation the ranking
		// used.
		r.Totals = FromTotals(pricing.Price(o.Selection))
		resp.Options = append(resp.Options, r)
	}
	return resp
}

type OptionSaveResultResponse struct {
	Saved    int               `json:"saved"`
	Failures map[string]string `json:"failures,omitempty"`
}
