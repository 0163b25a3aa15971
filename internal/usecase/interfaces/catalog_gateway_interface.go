package interfaces

import (
	"context"

	"freightdesk/internal/domain/entities"
)

// ICatalogGateway abstracts the read-only offer lookups performed when the
// operator selects a haulage or seafreight offer by id. The pure pricing
// functions never call it; only their callers enrich selections through it.
type ICatalogGateway interface {
	GetHaulageByID(ctx context.Context, id string) (entities.HaulageOffer, error)
	GetSeafreightByID(ctx context.Context, id string) (entities.SeafreightOffer, error)
}
