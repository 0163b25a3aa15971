package response

import (
	"testing"
	"time"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/domain/pricing"
)

func TestFromTotals(t *testing.T) {
	res := FromTotals(entities.Totals{
		HaulageTotal:    200,
		SeafreightTotal: 2100,
		MiscTotal:       80,
		CostPrice:       2380,
		Margin:          238,
		MarginPercent:   10,
		SellPrice:       2618,
	})
	if res.CostPrice != 2380 || res.SellPrice != 2618 {
		t.Fatalf("unexpected mapped totals: %+v", res)
	}
	if res.HaulageTotal != 200 || res.SeafreightTotal != 2100 || res.MiscTotal != 80 {
		t.Fatalf("unexpected category totals: %+v", res)
	}
	if res.Margin != 238 || res.MarginPercent != 10 {
		t.Fatalf("unexpected margin fields: %+v", res)
	}
}

func TestFromSession(t *testing.T) {
	now := time.Now().UTC()
	draft := entities.DraftQuote{
		ID:     "draft-1",
		Status: entities.DraftStatusDraft,
		Options: []entities.Option{
			{Label: "Option 1", Totals: entities.Totals{SellPrice: 100}, CreatedAt: now},
		},
	}

	res := FromSession("sess-1", draft, entities.Totals{SellPrice: 100})
	if res.SessionID != "sess-1" || res.Draft.ID != "draft-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Totals.SellPrice != 100 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
	if len(res.Options) != 1 || res.Options[0].Label != "Option 1" {
		t.Fatalf("unexpected options: %+v", res.Options)
	}
	if !res.Options[0].CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res.Options[0])
	}
}

func TestFromComparison_RecomputesRowTotals(t *testing.T) {
	sel := entities.Selection{
		Miscellaneous: []entities.ServiceSelection{{ServiceID: "svc", Price: 300, DefaultQuantity: 1}},
		MarginType:    entities.MarginTypePercent,
	}
	// Stored totals are stale on purpose: the row must show the recomputed
	// figure.
	opts := []entities.Option{
		{Label: "Option 1", Selection: sel, Totals: entities.Totals{SellPrice: 999}},
	}

	res := FromComparison(pricing.Compare(opts), opts)
	if res.BestOverall != -1 {
		t.Fatalf("single option must have no winner, got %+v", res)
	}
	if len(res.Options) != 1 || res.Options[0].Totals.SellPrice != 300 {
		t.Fatalf("expected recomputed sell price 300, got %+v", res.Options)
	}
}
