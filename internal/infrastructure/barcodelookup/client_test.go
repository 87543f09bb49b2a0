package barcodelookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/scanlens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com", 10*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
	assert.False(t, client.debug)
}

func TestGetProduct_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "049000050103", r.URL.Query().Get("barcode"))
		assert.Equal(t, "y", r.URL.Query().Get("formatted"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"products": []map[string]interface{}{
				{"title": "Coca-Cola", "barcode_number": "049000050103", "brand": "Coca-Cola"},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 10*time.Second)

	result, err := client.GetProduct(context.Background(), "049000050103")

	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Coca-Cola", result.Products[0].Title)
	assert.NotEmpty(t, result.Raw)
}

func TestGetProduct_EmptyProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 10*time.Second)

	result, err := client.GetProduct(context.Background(), "000000000000")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProduct_UpstreamStatusRelayed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"invalid key"}`))
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL, 10*time.Second)

	result, err := client.GetProduct(context.Background(), "049000050103")

	assert.Nil(t, result)
	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
}

func TestGetProduct_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 10*time.Second)

	result, err := client.GetProduct(context.Background(), "049000050103")

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestGetProduct_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient("test-api-key", server.URL, 10*time.Second)

	result, err := client.GetProduct(context.Background(), "049000050103")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestGetProduct_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 50*time.Millisecond)

	result, err := client.GetProduct(context.Background(), "049000050103")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestSearch_EmptyListAllowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "iphone", r.URL.Query().Get("search"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("key"))

		w.Write([]byte(`{"products":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 10*time.Second)

	result, err := client.Search(context.Background(), "iphone", 2)

	require.NoError(t, err)
	assert.Empty(t, result.Products)
}

func TestGetProduct_BurstExhaustedFailsFast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"title":"Coca-Cola"}]}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 100*time.Millisecond)

	// Drain the rate limiter burst.
	for i := 0; i < 3; i++ {
		_, err := client.GetProduct(context.Background(), "049000050103")
		require.NoError(t, err)
	}

	// The next call cannot get a token before the client timeout; it must
	// fail within that bound instead of blocking until the next refill.
	start := time.Now()
	_, err := client.GetProduct(context.Background(), "049000050103")

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Less(t, time.Since(start), 2*time.Second)
}
