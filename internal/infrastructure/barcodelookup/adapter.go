package barcodelookup

import (
	"context"

	"github.com/scanlens/backend/internal/domain"
)

// productFetcher is satisfied by both the direct Client and the ProxyClient.
type productFetcher interface {
	GetProduct(ctx context.Context, barcode domain.Barcode) (*LookupResponse, error)
	Search(ctx context.Context, query string, page int) (*LookupResponse, error)
}

// Adapter exposes BarcodeLookup.com behind the ProviderAdapter contract.
type Adapter struct {
	fetcher productFetcher
}

// NewAdapter wraps the direct client (API key attached to every request).
func NewAdapter(client *Client) *Adapter {
	return &Adapter{fetcher: client}
}

// NewProxyAdapter wraps the proxy client; no API key travels in its requests.
func NewProxyAdapter(client *ProxyClient) *Adapter {
	return &Adapter{fetcher: client}
}

func (a *Adapter) Name() string {
	return "barcodelookup"
}

// Lookup resolves every outcome to a LookupResult; it never returns an error.
func (a *Adapter) Lookup(ctx context.Context, barcode domain.Barcode) domain.LookupResult {
	resp, err := a.fetcher.GetProduct(ctx, barcode)
	if err != nil {
		return domain.FailureFrom(err)
	}
	return domain.Found(FormatProduct(resp.Products[0]), resp.Raw)
}

// Search returns normalized products for a keyword query. An empty result
// list is valid.
func (a *Adapter) Search(ctx context.Context, query string, page int) ([]domain.NormalizedProduct, error) {
	resp, err := a.fetcher.Search(ctx, query, page)
	if err != nil {
		return nil, err
	}
	products := make([]domain.NormalizedProduct, 0, len(resp.Products))
	for _, p := range resp.Products {
		products = append(products, *FormatProduct(p))
	}
	return products, nil
}
