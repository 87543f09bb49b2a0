package domain

import "context"

// ProviderAdapter translates between the normalized lookup contract and one
// upstream product-data provider. Implementations never return an error:
// every outcome, including transport failures, resolves to a LookupResult.
type ProviderAdapter interface {
	// Name identifies the provider for logging and config selection.
	Name() string
	Lookup(ctx context.Context, barcode Barcode) LookupResult
}

// SearchClient is implemented by providers that support keyword search
// (currently only BarcodeLookup.com).
type SearchClient interface {
	Search(ctx context.Context, query string, page int) ([]NormalizedProduct, error)
}

// ScanEngine abstracts the external barcode-decoding library. Stop must
// complete before a lookup is issued so a late decode callback can never
// overwrite an in-flight lookup's UI state.
type ScanEngine interface {
	Stop(ctx context.Context) error
}
