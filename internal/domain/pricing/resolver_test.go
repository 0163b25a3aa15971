package pricing

import (
	"testing"

	"freightdesk/internal/domain/entities"
)

func findItem(t *testing.T, items []LineItem, kind Kind, description string) LineItem {
	t.Helper()
	for _, it := range items {
		if it.Kind == kind && (description == "" || it.Description == description) {
			return it
		}
	}
	t.Fatalf("no line item of kind %s (%q) in %+v", kind, description, items)
	return LineItem{}
}

func TestResolve_Haulage(t *testing.T) {
	t.Run("base line scales with quantity", func(t *testing.T) {
		sel := entities.Selection{
			Haulage: &entities.HaulageSelection{OfferID: "h-1", Tariff: 200, Quantity: 3},
		}
		items := Resolve(sel)
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].Amount != 600 || items[0].Category != CategoryHaulage {
			t.Fatalf("unexpected base line: %+v", items[0])
		}
	})

	t.Run("add-ons are flat regardless of quantity", func(t *testing.T) {
		sel := entities.Selection{
			Haulage: &entities.HaulageSelection{OfferID: "h-1", Tariff: 200, Quantity: 5, OvertimeTariff: 50, MultiStop: 30},
		}
		items := Resolve(sel)
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
		if it := findItem(t, items, KindHaulageOvertime, ""); it.Amount != 50 {
			t.Fatalf("overtime must not scale: %+v", it)
		}
		if it := findItem(t, items, KindHaulageMultiStop, ""); it.Amount != 30 {
			t.Fatalf("multi-stop must not scale: %+v", it)
		}
	})

	t.Run("missing quantity defaults to 1", func(t *testing.T) {
		sel := entities.Selection{Haulage: &entities.HaulageSelection{OfferID: "h-1", Tariff: 200}}
		items := Resolve(sel)
		if items[0].Quantity != 1 || items[0].Amount != 200 {
			t.Fatalf("expected default quantity 1: %+v", items[0])
		}
	})

	t.Run("no haulage yields no items", func(t *testing.T) {
		if items := Resolve(entities.Selection{}); len(items) != 0 {
			t.Fatalf("expected no items, got %+v", items)
		}
	})
}

func TestResolve_SeafreightQuantityChain(t *testing.T) {
	container := entities.SeafreightSelection{
		OfferID:       "sf-1",
		ContainerType: "40HC",
		BasePrice:     1000,
		Surcharges:    []entities.Surcharge{{Name: "BAF", Value: 50}},
	}

	t.Run("explicit container quantity wins", func(t *testing.T) {
		sel := entities.Selection{
			Seafreights:         []entities.SeafreightSelection{container},
			ContainerQuantities: map[string]int{"sf-1": 4},
		}
		it := findItem(t, Resolve(sel), KindSeafreightContainer, "")
		if it.Quantity != 4 || it.Amount != 4000 {
			t.Fatalf("expected explicit quantity 4: %+v", it)
		}
	})

	t.Run("no explicit entry falls back to default then 1", func(t *testing.T) {
		withDefault := container
		withDefault.DefaultQuantity = 2
		sel := entities.Selection{Seafreights: []entities.SeafreightSelection{withDefault}}
		if it := findItem(t, Resolve(sel), KindSeafreightContainer, ""); it.Quantity != 2 {
			t.Fatalf("expected default quantity 2: %+v", it)
		}

		sel = entities.Selection{Seafreights: []entities.SeafreightSelection{container}}
		if it := findItem(t, Resolve(sel), KindSeafreightContainer, ""); it.Quantity != 1 {
			t.Fatalf("expected fallback quantity 1: %+v", it)
		}
	})

	t.Run("surcharge explicit quantity wins", func(t *testing.T) {
		sel := entities.Selection{
			Seafreights:         []entities.SeafreightSelection{container},
			ContainerQuantities: map[string]int{"sf-1": 3},
			SurchargeQuantities: map[string]int{entities.SurchargeQuantityKey("sf-1", "BAF"): 5},
		}
		if it := findItem(t, Resolve(sel), KindSeafreightSurcharge, ""); it.Quantity != 5 || it.Amount != 250 {
			t.Fatalf("expected surcharge quantity 5: %+v", it)
		}
	})

	t.Run("surcharge without explicit entry inherits container quantity", func(t *testing.T) {
		sel := entities.Selection{
			Seafreights:         []entities.SeafreightSelection{container},
			ContainerQuantities: map[string]int{"sf-1": 3},
		}
		if it := findItem(t, Resolve(sel), KindSeafreightSurcharge, ""); it.Quantity != 3 || it.Amount != 150 {
			t.Fatalf("expected inherited quantity 3: %+v", it)
		}
	})
}

func TestResolve_MiscQuantityChain(t *testing.T) {
	svc := entities.ServiceSelection{ServiceID: "svc-1", ServiceName: "Customs clearance", Price: 80}

	t.Run("lookup by service id", func(t *testing.T) {
		sel := entities.Selection{
			Miscellaneous:     []entities.ServiceSelection{svc},
			ServiceQuantities: map[string]int{"svc-1": 2},
		}
		if it := findItem(t, Resolve(sel), KindMiscService, ""); it.Amount != 160 {
			t.Fatalf("expected id lookup: %+v", it)
		}
	})

	t.Run("lookup falls back to name", func(t *testing.T) {
		sel := entities.Selection{
			Miscellaneous:     []entities.ServiceSelection{svc},
			ServiceQuantities: map[string]int{"Customs clearance": 3},
		}
		if it := findItem(t, Resolve(sel), KindMiscService, ""); it.Amount != 240 {
			t.Fatalf("expected name lookup: %+v", it)
		}
	})

	t.Run("lookup falls back to synthetic key", func(t *testing.T) {
		anon := entities.ServiceSelection{Price: 10}
		sel := entities.Selection{
			Miscellaneous:     []entities.ServiceSelection{anon},
			ServiceQuantities: map[string]int{ServiceFallbackKey(anon, 0): 4},
		}
		if it := findItem(t, Resolve(sel), KindMiscService, ""); it.Amount != 40 {
			t.Fatalf("expected synthetic key lookup: %+v", it)
		}
	})

	t.Run("no entry anywhere defaults to 1", func(t *testing.T) {
		sel := entities.Selection{Miscellaneous: []entities.ServiceSelection{svc}}
		if it := findItem(t, Resolve(sel), KindMiscService, ""); it.Quantity != 1 || it.Amount != 80 {
			t.Fatalf("expected default quantity 1: %+v", it)
		}
	})
}

func TestResolve_SyntheticKeyIsStable(t *testing.T) {
	svc := entities.ServiceSelection{ServiceName: "Fumigation"}
	first := ServiceFallbackKey(svc, 2)
	second := ServiceFallbackKey(svc, 2)
	if first != second {
		t.Fatalf("synthetic key must be stable: %q vs %q", first, second)
	}
	if first == ServiceFallbackKey(svc, 3) {
		t.Fatalf("synthetic key must distinguish positions")
	}
}
