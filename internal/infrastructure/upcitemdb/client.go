package upcitemdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/scanlens/backend/internal/domain"
)

// Client talks to the UPC Item DB lookup API. The free trial endpoint needs
// no credentials; the paid endpoint authenticates with user_key/key_type
// headers.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	keyType    string
	paidPlan   bool
}

// Config selects between the trial and paid endpoints.
type Config struct {
	TrialEndpoint string
	PaidEndpoint  string
	UsePaidPlan   bool
	APIKey        string
	KeyType       string
}

// NewClient creates a UPC Item DB client.
func NewClient(cfg Config, timeout time.Duration) *Client {
	endpoint := cfg.TrialEndpoint
	if cfg.UsePaidPlan {
		endpoint = cfg.PaidEndpoint
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		apiKey:     cfg.APIKey,
		keyType:    cfg.KeyType,
		paidPlan:   cfg.UsePaidPlan,
	}
}

// Item is a single product record from UPC Item DB.
type Item struct {
	Title       string `json:"title,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Description string `json:"description,omitempty"`
	Model       string `json:"model,omitempty"`
	Category    string `json:"category,omitempty"`
	UPC         string `json:"upc,omitempty"`
	EAN         string `json:"ean,omitempty"`
	ASIN        string `json:"asin,omitempty"`
	Color       string `json:"color,omitempty"`
	Size        string `json:"size,omitempty"`
	Weight      string `json:"weight,omitempty"`
	Dimension   string `json:"dimension,omitempty"`
	Currency    string `json:"currency,omitempty"`

	LowestRecordedPrice  *float64 `json:"lowest_recorded_price,omitempty"`
	HighestRecordedPrice *float64 `json:"highest_recorded_price,omitempty"`

	Images []string `json:"images,omitempty"`
	Offers []Offer  `json:"offers,omitempty"`
}

// Offer is a retailer listing inside a UPC Item DB item.
type Offer struct {
	Merchant  string  `json:"merchant,omitempty"`
	Title     string  `json:"title,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Link      string  `json:"link,omitempty"`
	Condition string  `json:"condition,omitempty"`
	UpdatedT  int64   `json:"updated_t,omitempty"`
}

// LookupResponse pairs the decoded item list with the raw provider payload.
type LookupResponse struct {
	Items []Item
	Raw   json.RawMessage
}

// GetProduct looks up a single barcode. Zero items resolves to
// domain.ErrProductNotFound.
func (c *Client) GetProduct(ctx context.Context, barcode domain.Barcode) (*LookupResponse, error) {
	log.Printf("[UPCItemDB] lookup for barcode: %s", barcode)

	reqURL := fmt.Sprintf("%s?upc=%s", c.endpoint, url.QueryEscape(barcode.Trim().String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Accept-Encoding is left to the transport: setting it by hand would turn
	// off the automatic gzip decompression this provider relies on.
	req.Header.Set("Accept", "application/json")
	if c.paidPlan && c.apiKey != "" {
		req.Header.Set("user_key", c.apiKey)
		req.Header.Set("key_type", c.keyType)
	}

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
		log.Printf("[UPCItemDB] API error - status: %d", resp.StatusCode)
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: upstreamMessage(body, resp.StatusCode)}
	}

	var decoded struct {
		Code  string `json:"code"`
		Items []Item `json:"items"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(decoded.Items) == 0 {
		return nil, domain.ErrProductNotFound
	}

	return &LookupResponse{Items: decoded.Items, Raw: body}, nil
}

// upstreamMessage pulls the provider's message field out of an error body,
// falling back to the bare status.
func upstreamMessage(body []byte, status int) string {
	var decoded struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Message != "" {
		return decoded.Message
	}
	return fmt.Sprintf("HTTP %d", status)
}
