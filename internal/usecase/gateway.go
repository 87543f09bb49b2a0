package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/scanlens/backend/internal/domain"
)

// LookupGateway fronts exactly one configured provider adapter per deployment.
// It validates input locally before any network round trip; there is no
// multi-provider fallback.
type LookupGateway struct {
	adapter domain.ProviderAdapter
	search  domain.SearchClient
}

// NewLookupGateway creates a gateway over the active adapter. search may be
// nil for providers without keyword search.
func NewLookupGateway(adapter domain.ProviderAdapter, search domain.SearchClient) *LookupGateway {
	return &LookupGateway{adapter: adapter, search: search}
}

// Provider returns the active provider's name.
func (g *LookupGateway) Provider() string {
	return g.adapter.Name()
}

// Lookup resolves a barcode to a LookupResult. Empty input fails synchronously
// with INVALID_INPUT and never reaches the network.
func (g *LookupGateway) Lookup(ctx context.Context, barcode domain.Barcode) domain.LookupResult {
	trimmed := barcode.Trim()
	if trimmed.IsEmpty() {
		return domain.Failed(domain.KindInvalidInput, domain.ErrInvalidBarcode.Error(), 0)
	}

	log.Printf("[Gateway] dispatching barcode %s to provider %s", trimmed, g.adapter.Name())
	return g.adapter.Lookup(ctx, trimmed)
}

// Search runs a keyword search against the active provider. Providers without
// search support return ErrSearchUnsupported.
func (g *LookupGateway) Search(ctx context.Context, query string, page int) ([]domain.NormalizedProduct, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidQuery
	}
	if g.search == nil {
		return nil, domain.ErrSearchUnsupported
	}
	if page < 1 {
		page = 1
	}

	return g.search.Search(ctx, query, page)
}
