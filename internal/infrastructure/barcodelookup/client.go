package barcodelookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/scanlens/backend/internal/domain"
	"golang.org/x/time/rate"
)

const userAgent = "BarcodeLookup-Proxy/1.0"

// maxErrorBodyBytes caps how much of an upstream error body is kept for logs
// and relayed error messages.
const maxErrorBodyBytes = 2048

// Client talks directly to the BarcodeLookup.com v3 API with the API key
// attached server-side. The proxy service uses this client; browsers never see
// the key.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a BarcodeLookup.com client. timeout bounds each upstream
// call (the proxy uses 10s).
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	// Free tier allows 3 requests per minute, so 0.05 requests/sec.
	limiter := rate.NewLimiter(rate.Limit(0.05), 3)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Product is a single product record as returned by BarcodeLookup.com.
type Product struct {
	Title         string `json:"title,omitempty"`
	ProductName   string `json:"product_name,omitempty"`
	BarcodeNumber string `json:"barcode_number,omitempty"`
	UPC           string `json:"upc,omitempty"`
	EAN           string `json:"ean,omitempty"`
	ASIN          string `json:"asin,omitempty"`
	Brand         string `json:"brand,omitempty"`
	Manufacturer  string `json:"manufacturer,omitempty"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	Model         string `json:"model,omitempty"`
	MPN           string `json:"mpn,omitempty"`
	Color         string `json:"color,omitempty"`
	Size          string `json:"size,omitempty"`
	Weight        string `json:"weight,omitempty"`
	Dimension     string `json:"dimension,omitempty"`
	Currency      string `json:"currency,omitempty"`

	LowestRecordedPrice  *float64 `json:"lowest_recorded_price,omitempty"`
	HighestRecordedPrice *float64 `json:"highest_recorded_price,omitempty"`

	Images  []string `json:"images,omitempty"`
	Stores  []Store  `json:"stores,omitempty"`
	Rating  string   `json:"rating,omitempty"`
	Reviews []Review `json:"reviews,omitempty"`
}

// Store is a retailer listing inside a BarcodeLookup product record.
type Store struct {
	Name     string `json:"store_name"`
	Price    string `json:"store_price,omitempty"`
	Currency string `json:"currency,omitempty"`
	Link     string `json:"product_url,omitempty"`
}

// Review is a customer review inside a BarcodeLookup product record.
type Review struct {
	Name   string `json:"name,omitempty"`
	Rating string `json:"rating,omitempty"`
	Title  string `json:"title,omitempty"`
	Review string `json:"review,omitempty"`
}

// LookupResponse holds the decoded product list together with the raw payload
// it was decoded from, so callers can pass the provider's exact response
// through untouched.
type LookupResponse struct {
	Products []Product
	Raw      json.RawMessage
}

// GetProduct looks up a single barcode. Zero matching products resolves to
// domain.ErrProductNotFound; non-2xx upstream statuses resolve to
// *domain.UpstreamError so the proxy can relay them.
func (c *Client) GetProduct(ctx context.Context, barcode domain.Barcode) (*LookupResponse, error) {
	log.Printf("[BarcodeLookup] lookup for barcode: %s", barcode)

	params := url.Values{}
	params.Add("barcode", barcode.Trim().String())
	params.Add("formatted", "y")
	params.Add("key", c.apiKey)

	resp, err := c.fetch(ctx, fmt.Sprintf("%s?%s", c.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}
	if len(resp.Products) == 0 {
		return nil, domain.ErrProductNotFound
	}
	return resp, nil
}

// Search runs a keyword search. An empty product list is a valid result here,
// unlike GetProduct.
func (c *Client) Search(ctx context.Context, query string, page int) (*LookupResponse, error) {
	log.Printf("[BarcodeLookup] search for %q (page %d)", query, page)

	params := url.Values{}
	params.Add("search", query)
	params.Add("formatted", "y")
	params.Add("page", strconv.Itoa(page))
	params.Add("key", c.apiKey)

	resp, err := c.fetch(ctx, fmt.Sprintf("%s?%s", c.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// fetch performs the GET, classifies the response and decodes the product list.
func (c *Client) fetch(ctx context.Context, reqURL string) (*LookupResponse, error) {
	// The request context has no deadline of its own, so bound the wait for a
	// token by the same timeout the request itself gets. A caller past the
	// burst fails fast instead of queueing for the next token.
	waitCtx := ctx
	if c.httpClient.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}
	if err := c.rateLimiter.Wait(waitCtx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", domain.ErrUpstreamUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[BarcodeLookup] API error - status: %d, body: %s", resp.StatusCode, truncate(body, maxErrorBodyBytes))
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(truncate(body, maxErrorBodyBytes))}
	}

	c.debugLog("response body: %s", body)

	var decoded struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &LookupResponse{Products: decoded.Products, Raw: body}, nil
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[BarcodeLookup] "+format, args...)
	}
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
