package repository

import (
	"os"
	"strconv"
	"time"

	"freightdesk/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Monetary values are stored as string-formatted numbers so they round-trip
// without float flattening in the attribute encoding.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func intToString(v int) string {
	return strconv.Itoa(v)
}

func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func toDraftItem(d entities.DraftQuote) draftItem {
	it := draftItem{
		ID:        d.ID,
		RequestID: d.RequestID,
		Customer: customerItem{
			ContactID:   d.Customer.ContactID,
			Name:        d.Customer.Name,
			Email:       d.Customer.Email,
			CompanyName: d.Customer.CompanyName,
		},
		Shipment: shipmentItem{
			Origin:      d.Shipment.Origin,
			Destination: d.Shipment.Destination,
			Incoterm:    d.Shipment.Incoterm,
			Commodity:   d.Shipment.Commodity,
		},
		Selection: toSelectionItem(d.Selection),
		Status:    string(d.Status),
		CreatedAt: timeToString(d.CreatedAt),
		UpdatedAt: timeToString(d.UpdatedAt),
	}
	for _, o := range d.Options {
		it.Options = append(it.Options, toOptionItem(o))
	}
	return it
}

func fromDraftItem(it draftItem) entities.DraftQuote {
	d := entities.DraftQuote{
		ID:        it.ID,
		RequestID: it.RequestID,
		Customer: entities.Customer{
			ContactID:   it.Customer.ContactID,
			Name:        it.Customer.Name,
			Email:       it.Customer.Email,
			CompanyName: it.Customer.CompanyName,
		},
		Shipment: entities.Shipment{
			Origin:      it.Shipment.Origin,
			Destination: it.Shipment.Destination,
			Incoterm:    it.Shipment.Incoterm,
			Commodity:   it.Shipment.Commodity,
		},
		Selection: fromSelectionItem(it.Selection),
		Status:    entities.DraftStatus(it.Status),
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
	for _, o := range it.Options {
		d.Options = append(d.Options, fromOptionItem(o))
	}
	return d
}

func toSelectionItem(s entities.Selection) selectionItem {
	it := selectionItem{
		ContainerQuantities: s.ContainerQuantities,
		SurchargeQuantities: s.SurchargeQuantities,
		ServiceQuantities:   s.ServiceQuantities,
		MarginType:          string(s.MarginType),
		MarginValue:         floatToString(s.MarginValue),
	}
	if s.Haulage != nil {
		it.Haulage = &haulageItem{
			OfferID:        s.Haulage.OfferID,
			Tariff:         floatToString(s.Haulage.Tariff),
			Quantity:       s.Haulage.Quantity,
			OvertimeTariff: floatToString(s.Haulage.OvertimeTariff),
			MultiStop:      floatToString(s.Haulage.MultiStop),
		}
	}
	for _, sf := range s.Seafreights {
		sfi := seafreightItem{
			OfferID:         sf.OfferID,
			Carrier:         sf.Carrier,
			ContainerType:   sf.ContainerType,
			TEU:             sf.TEU,
			BasePrice:       floatToString(sf.BasePrice),
			DefaultQuantity: sf.DefaultQuantity,
		}
		for _, sc := range sf.Surcharges {
			sfi.Surcharges = append(sfi.Surcharges, surchargeItem{Name: sc.Name, Value: floatToString(sc.Value)})
		}
		it.Seafreights = append(it.Seafreights, sfi)
	}
	for _, svc := range s.Miscellaneous {
		it.Miscellaneous = append(it.Miscellaneous, serviceItem{
			ServiceID:       svc.ServiceID,
			ServiceName:     svc.ServiceName,
			Price:           floatToString(svc.Price),
			DefaultQuantity: svc.DefaultQuantity,
		})
	}
	return it
}

func fromSelectionItem(it selectionItem) entities.Selection {
	s := entities.Selection{
		ContainerQuantities: it.ContainerQuantities,
		SurchargeQuantities: it.SurchargeQuantities,
		ServiceQuantities:   it.ServiceQuantities,
		MarginType:          entities.MarginType(it.MarginType),
		MarginValue:         stringToFloat(it.MarginValue),
	}
	if it.Haulage != nil {
		s.Haulage = &entities.HaulageSelection{
			OfferID:        it.Haulage.OfferID,
			Tariff:         stringToFloat(it.Haulage.Tariff),
			Quantity:       it.Haulage.Quantity,
			OvertimeTariff: stringToFloat(it.Haulage.OvertimeTariff),
			MultiStop:      stringToFloat(it.Haulage.MultiStop),
		}
	}
	for _, sfi := range it.Seafreights {
		sf := entities.SeafreightSelection{
			OfferID:         sfi.OfferID,
			Carrier:         sfi.Carrier,
			ContainerType:   sfi.ContainerType,
			TEU:             sfi.TEU,
			BasePrice:       stringToFloat(sfi.BasePrice),
			DefaultQuantity: sfi.DefaultQuantity,
		}
		for _, sc := range sfi.Surcharges {
			sf.Surcharges = append(sf.Surcharges, entities.Surcharge{Name: sc.Name, Value: stringToFloat(sc.Value)})
		}
		s.Seafreights = append(s.Seafreights, sf)
	}
	for _, svc := range it.Miscellaneous {
		s.Miscellaneous = append(s.Miscellaneous, entities.ServiceSelection{
			ServiceID:       svc.ServiceID,
			ServiceName:     svc.ServiceName,
			Price:           stringToFloat(svc.Price),
			DefaultQuantity: svc.DefaultQuantity,
		})
	}
	return s
}

func toOptionItem(o entities.Option) optionItem {
	return optionItem{
		Label:     o.Label,
		Selection: toSelectionItem(o.Selection),
		Totals: totalsItem{
			HaulageTotal:    floatToString(o.Totals.HaulageTotal),
			SeafreightTotal: floatToString(o.Totals.SeafreightTotal),
			MiscTotal:       floatToString(o.Totals.MiscTotal),
			CostPrice:       floatToString(o.Totals.CostPrice),
			Margin:          floatToString(o.Totals.Margin),
			MarginPercent:   floatToString(o.Totals.MarginPercent),
			SellPrice:       floatToString(o.Totals.SellPrice),
		},
		CreatedAt: timeToString(o.CreatedAt),
	}
}

func fromOptionItem(it optionItem) entities.Option {
	return entities.Option{
		Label:     it.Label,
		Selection: fromSelectionItem(it.Selection),
		Totals: entities.Totals{
			HaulageTotal:    stringToFloat(it.Totals.HaulageTotal),
			SeafreightTotal: stringToFloat(it.Totals.SeafreightTotal),
			MiscTotal:       stringToFloat(it.Totals.MiscTotal),
			CostPrice:       stringToFloat(it.Totals.CostPrice),
			Margin:          stringToFloat(it.Totals.Margin),
			MarginPercent:   stringToFloat(it.Totals.MarginPercent),
			SellPrice:       stringToFloat(it.Totals.SellPrice),
		},
		CreatedAt: stringToTime(it.CreatedAt),
	}
}
