package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/scanlens/backend/config"
	"github.com/scanlens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig(active string) *config.Config {
	return &config.Config{
		Provider: config.ProviderConfig{Active: active},
		Upstream: config.UpstreamConfig{Timeout: 2 * time.Second},
	}
}

func TestNewAdapter_UnknownProvider(t *testing.T) {
	adapter, search, err := NewAdapter(baseConfig("openfoodfacts"))

	assert.Nil(t, adapter)
	assert.Nil(t, search)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestNewAdapter_BarcodeLookupDirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "direct-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"products":[{"title":"Coca-Cola"}]}`))
	}))
	defer server.Close()

	cfg := baseConfig(config.ProviderBarcodeLookup)
	cfg.Provider.BarcodeLookup = config.BarcodeLookupConfig{
		APIKey:  "direct-key",
		BaseURL: server.URL,
	}

	adapter, search, err := NewAdapter(cfg)
	require.NoError(t, err)
	assert.Equal(t, "barcodelookup", adapter.Name())
	assert.NotNil(t, search)

	result := adapter.Lookup(context.Background(), "049000050103")
	require.Equal(t, domain.StatusFound, result.Status)
	assert.Equal(t, "Coca-Cola", result.Product.Title)
}

func TestNewAdapter_BarcodeLookupProxyMode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lookup/049000050103", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("key"))
		w.Write([]byte(`{"success":true,"data":{"products":[{"title":"Coca-Cola"}]},"product":{"title":"Coca-Cola"},"totalProducts":1}`))
	}))
	defer server.Close()

	cfg := baseConfig(config.ProviderBarcodeLookup)
	cfg.Provider.BarcodeLookup = config.BarcodeLookupConfig{
		UseProxy: true,
		ProxyURL: server.URL,
	}

	adapter, search, err := NewAdapter(cfg)
	require.NoError(t, err)
	assert.NotNil(t, search)

	result := adapter.Lookup(context.Background(), "049000050103")
	require.Equal(t, domain.StatusFound, result.Status)
	assert.Equal(t, "Coca-Cola", result.Product.Title)
}

func TestNewAdapter_UPCItemDB(t *testing.T) {
	cfg := baseConfig(config.ProviderUPCItemDB)
	cfg.Provider.UPCItemDB = config.UPCItemDBConfig{
		TrialEndpoint: "https://unused.example/trial",
		PaidEndpoint:  "https://unused.example/paid",
	}

	adapter, search, err := NewAdapter(cfg)
	require.NoError(t, err)
	assert.Equal(t, "upcitemdb", adapter.Name())
	assert.Nil(t, search)
}

func TestNewAdapter_UPCDatabaseWithRelay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.RawQuery, "url="))
		target := r.URL.Query().Get("url")
		assert.Contains(t, target, "/0000000012345")
		w.Write([]byte(`{"valid":true,"title":"Coca-Cola","upc":"0000000012345"}`))
	}))
	defer server.Close()

	cfg := baseConfig(config.ProviderUPCDatabase)
	cfg.Provider.UPCDatabase = config.UPCDatabaseConfig{
		Endpoint: "https://upstream.example/product",
		APIKey:   "db-key",
		UseRelay: true,
		RelayURL: server.URL + "/raw?url=",
	}

	adapter, search, err := NewAdapter(cfg)
	require.NoError(t, err)
	assert.Equal(t, "upcdatabase", adapter.Name())
	assert.Nil(t, search)

	result := adapter.Lookup(context.Background(), "12345")
	require.Equal(t, domain.StatusFound, result.Status)
	assert.Equal(t, "Coca-Cola", result.Product.Title)
}

func TestNewAdapter_UPCDatabaseWithoutRelay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/0000000012345", r.URL.Path)
		w.Write([]byte(`{"valid":true,"title":"Coca-Cola"}`))
	}))
	defer server.Close()

	cfg := baseConfig(config.ProviderUPCDatabase)
	cfg.Provider.UPCDatabase = config.UPCDatabaseConfig{
		Endpoint: server.URL,
		APIKey:   "db-key",
		UseRelay: false,
		RelayURL: "https://relay.example/raw?url=",
	}

	adapter, _, err := NewAdapter(cfg)
	require.NoError(t, err)

	result := adapter.Lookup(context.Background(), "12345")
	require.Equal(t, domain.StatusFound, result.Status)
}
