package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/usecase/interfaces"
)

var ErrMissingCatalogBaseURL = errors.New("missing CATALOG_BASE_URL")
var ErrOfferNotFound = errors.New("offer not found")

// HTTPGateway fetches haulage and seafreight offers from the pricing catalog
// service. Lookups are read-only; the gateway never mutates catalog state.
//
// Env:
//   - CATALOG_BASE_URL (e.g. http://catalog:8081)
//   - CATALOG_MOCK (serve deterministic sample offers without the network)
type HTTPGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.ICatalogGateway = (*HTTPGateway)(nil)

func NewHTTPGateway(baseURL string) (*HTTPGateway, error) {
	if isCatalogMockEnabled() {
		log.Printf("[catalog][gateway] mock mode enabled")
		return &HTTPGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[catalog][gateway] missing CATALOG_BASE_URL")
		return nil, ErrMissingCatalogBaseURL
	}

	return &HTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (g *HTTPGateway) GetHaulageByID(ctx context.Context, id string) (entities.HaulageOffer, error) {
	if g.mockMode {
		return mockHaulageOffer(id), nil
	}

	var offer entities.HaulageOffer
	if err := g.getJSON(ctx, "/haulages/"+url.PathEscape(id), &offer); err != nil {
		return entities.HaulageOffer{}, err
	}
	return offer, nil
}

func (g *HTTPGateway) GetSeafreightByID(ctx context.Context, id string) (entities.SeafreightOffer, error) {
	if g.mockMode {
		return mockSeafreightOffer(id), nil
	}

	var offer entities.SeafreightOffer
	if err := g.getJSON(ctx, "/seafreights/"+url.PathEscape(id), &offer); err != nil {
		return entities.SeafreightOffer{}, err
	}
	return offer, nil
}

func (g *HTTPGateway) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	log.Printf("[catalog][gateway] get start path=%s", path)
	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[catalog][gateway] get failed path=%s err=%v", path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrOfferNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("[catalog][gateway] get unexpected status path=%s status=%d body=%s", path, resp.StatusCode, body)
		return fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("[catalog][gateway] decode failed path=%s err=%v", path, err)
		return err
	}
	log.Printf("[catalog][gateway] get success path=%s", path)
	return nil
}

func mockHaulageOffer(id string) entities.HaulageOffer {
	return entities.HaulageOffer{
		ID:             id,
		Haulier:        "Mock Haulier",
		LoadingCity:    "Antwerp",
		DeliveryCity:   "Brussels",
		UnitTariff:     200,
		OvertimeTariff: 50,
		MultiStop:      30,
		Currency:       "EUR",
	}
}

func mockSeafreightOffer(id string) entities.SeafreightOffer {
	return entities.SeafreightOffer{
		ID:            id,
		Carrier:       "Mock Line",
		ContainerType: "40HC",
		TEU:           2,
		BasePrice:     1000,
		Surcharges: []entities.Surcharge{
			{Name: "BAF", Value: 50},
			{Name: "THC", Value: 120},
		},
		Currency: "EUR",
	}
}

func isCatalogMockEnabled() bool {
	for _, key := range []string{"CATALOG_MOCK", "CATALOG_GATEWAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
