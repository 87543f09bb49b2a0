package barcodelookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/scanlens/backend/internal/domain"
)

// ProxyClient reaches BarcodeLookup.com through the proxy service instead of
// calling upstream directly. The API key never appears in its requests; the
// proxy attaches it server-side.
type ProxyClient struct {
	httpClient *http.Client
	proxyURL   string
}

// NewProxyClient creates a client targeting the proxy's /lookup and /search
// routes under proxyURL (e.g. "http://localhost:3000/api").
func NewProxyClient(proxyURL string) *ProxyClient {
	return &ProxyClient{
		httpClient: &http.Client{},
		proxyURL:   proxyURL,
	}
}

// envelope is the proxy's uniform response shape. Callers branch on Success,
// not HTTP status alone: NOT_FOUND rides a 404 but is still well-formed.
type envelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data,omitempty"`
	Product  *Product        `json:"product,omitempty"`
	Products []Product       `json:"products,omitempty"`
	Error    string          `json:"error,omitempty"`
	Code     string          `json:"code,omitempty"`
}

// GetProduct relays a barcode lookup through the proxy.
func (c *ProxyClient) GetProduct(ctx context.Context, barcode domain.Barcode) (*LookupResponse, error) {
	log.Printf("[BarcodeLookup] proxied lookup for barcode: %s", barcode)

	reqURL := fmt.Sprintf("%s/lookup/%s", c.proxyURL, url.PathEscape(barcode.Trim().String()))
	env, status, err := c.fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	if !env.Success {
		return nil, envelopeErr(env, status)
	}
	if env.Product == nil {
		return nil, domain.ErrProductNotFound
	}
	return &LookupResponse{Products: []Product{*env.Product}, Raw: env.Data}, nil
}

// Search relays a keyword search through the proxy.
func (c *ProxyClient) Search(ctx context.Context, query string, page int) (*LookupResponse, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("page", fmt.Sprintf("%d", page))

	env, status, err := c.fetch(ctx, fmt.Sprintf("%s/search?%s", c.proxyURL, params.Encode()))
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, envelopeErr(env, status)
	}
	return &LookupResponse{Products: env.Products, Raw: env.Data}, nil
}

func (c *ProxyClient) fetch(ctx context.Context, reqURL string) (*envelope, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, 0, fmt.Errorf("failed to decode response: %w", err)
	}
	return &env, resp.StatusCode, nil
}

// envelopeErr converts a success:false envelope into the client error taxonomy.
func envelopeErr(env *envelope, status int) error {
	if env.Code == "NOT_FOUND" {
		return domain.ErrProductNotFound
	}
	msg := env.Error
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &domain.UpstreamError{StatusCode: status, Body: msg}
}
