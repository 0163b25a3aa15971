package entities

// HaulageOffer is a catalog record for one trucking tariff, fetched read-only
// from the catalog service when the operator picks an offer by id.
type HaulageOffer struct {
	ID             string  `json:"id"`
	Haulier        string  `json:"haulier"`
	LoadingCity    string  `json:"loading_city"`
	DeliveryCity   string  `json:"delivery_city"`
	UnitTariff     float64 `json:"unit_tariff"`
	OvertimeTariff float64 `json:"overtime_tariff"`
	MultiStop      float64 `json:"multi_stop"`
	Currency       string  `json:"currency"`
}

// SeafreightOffer is a catalog record for one ocean tariff per container type.
type SeafreightOffer struct {
	ID            string      `json:"id"`
	Carrier       string      `json:"carrier"`
	ContainerType string      `json:"container_type"`
	TEU           int         `json:"teu"`
	BasePrice     float64     `json:"base_price"`
	Surcharges    []Surcharge `json:"surcharges"`
	Currency      string      `json:"currency"`
}
