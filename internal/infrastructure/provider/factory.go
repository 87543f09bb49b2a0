// Package provider builds the active lookup adapter from configuration.
package provider

import (
	"fmt"

	"github.com/scanlens/backend/config"
	"github.com/scanlens/backend/internal/domain"
	"github.com/scanlens/backend/internal/infrastructure/barcodelookup"
	"github.com/scanlens/backend/internal/infrastructure/upcdatabase"
	"github.com/scanlens/backend/internal/infrastructure/upcitemdb"
)

// NewAdapter constructs the adapter selected by cfg.Provider.Active, honoring
// the per-provider mode switches (proxy relay for BarcodeLookup, CORS relay
// for UPCDatabase, trial/paid for UPC Item DB). The returned SearchClient is
// nil for providers without keyword search.
func NewAdapter(cfg *config.Config) (domain.ProviderAdapter, domain.SearchClient, error) {
	switch cfg.Provider.Active {
	case config.ProviderBarcodeLookup:
		bl := cfg.Provider.BarcodeLookup
		if bl.UseProxy {
			adapter := barcodelookup.NewProxyAdapter(barcodelookup.NewProxyClient(bl.ProxyURL))
			return adapter, adapter, nil
		}
		adapter := barcodelookup.NewAdapter(barcodelookup.NewClient(bl.APIKey, bl.BaseURL, cfg.Upstream.Timeout))
		return adapter, adapter, nil

	case config.ProviderUPCItemDB:
		item := cfg.Provider.UPCItemDB
		client := upcitemdb.NewClient(upcitemdb.Config{
			TrialEndpoint: item.TrialEndpoint,
			PaidEndpoint:  item.PaidEndpoint,
			UsePaidPlan:   item.UsePaidPlan,
			APIKey:        item.APIKey,
			KeyType:       item.KeyType,
		}, cfg.Upstream.Timeout)
		return upcitemdb.NewAdapter(client), nil, nil

	case config.ProviderUPCDatabase:
		db := cfg.Provider.UPCDatabase
		relayURL := ""
		if db.UseRelay {
			relayURL = db.RelayURL
		}
		client := upcdatabase.NewClient(db.Endpoint, db.APIKey, relayURL, cfg.Upstream.Timeout)
		return upcdatabase.NewAdapter(client), nil, nil
	}

	return nil, nil, fmt.Errorf("unknown provider: %s", cfg.Provider.Active)
}
