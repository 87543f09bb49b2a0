package upcdatabase

import (
	"context"

	"github.com/scanlens/backend/internal/domain"
)

// Adapter exposes UPCDatabase.org behind the ProviderAdapter contract.
type Adapter struct {
	client *Client
}

func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Name() string {
	return "upcdatabase"
}

// Lookup resolves every outcome to a LookupResult.
func (a *Adapter) Lookup(ctx context.Context, barcode domain.Barcode) domain.LookupResult {
	resp, err := a.client.GetProduct(ctx, barcode)
	if err != nil {
		return domain.FailureFrom(err)
	}
	return domain.Found(FormatProduct(resp.Product), resp.Raw)
}
