package upcitemdb

import (
	"context"

	"github.com/scanlens/backend/internal/domain"
)

// Adapter exposes UPC Item DB behind the ProviderAdapter contract.
type Adapter struct {
	client *Client
}

func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Name() string {
	return "upcitemdb"
}

// Lookup resolves every outcome to a LookupResult; the first item is taken as
// the best match.
func (a *Adapter) Lookup(ctx context.Context, barcode domain.Barcode) domain.LookupResult {
	resp, err := a.client.GetProduct(ctx, barcode)
	if err != nil {
		return domain.FailureFrom(err)
	}
	return domain.Found(FormatItem(resp.Items[0]), resp.Raw)
}
