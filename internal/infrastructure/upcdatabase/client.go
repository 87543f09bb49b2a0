package upcdatabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/scanlens/backend/internal/domain"
)

// Client talks to the UPCDatabase.org product API. The API key always travels
// as a query parameter: authentication headers trigger a CORS preflight that
// the provider does not answer, so browser deployments depend on keeping the
// request "simple". Requests can optionally be routed through a generic CORS
// relay that takes the target URL as a query parameter.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	relayURL   string
}

// NewClient creates a UPCDatabase.org client. relayURL is the relay prefix
// (e.g. "https://api.allorigins.win/raw?url="); empty disables relaying.
func NewClient(endpoint, apiKey, relayURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		apiKey:     apiKey,
		relayURL:   relayURL,
	}
}

// Response is the flat product object UPCDatabase.org returns. Valid is kept
// raw because the provider reports both the boolean false and the string
// "false" for unknown barcodes.
type Response struct {
	Valid         json.RawMessage `json:"valid,omitempty"`
	Error         string          `json:"error,omitempty"`
	Title         string          `json:"title,omitempty"`
	Alias         string          `json:"alias,omitempty"`
	Description   string          `json:"description,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	Manufacturer  string          `json:"manufacturer,omitempty"`
	Category      string          `json:"category,omitempty"`
	MPN           string          `json:"mpn,omitempty"`
	UPC           string          `json:"upc,omitempty"`
	EAN           string          `json:"ean,omitempty"`
	IssuerCountry string          `json:"issuer_country,omitempty"`
	Color         string          `json:"color,omitempty"`
	Size          string          `json:"size,omitempty"`
	Weight        string          `json:"weight,omitempty"`
	Images        []string        `json:"images,omitempty"`
}

// Invalid reports whether the provider flagged the barcode as unknown.
func (r *Response) Invalid() bool {
	return strings.Trim(string(r.Valid), `"`) == "false"
}

// LookupResponse pairs the decoded product with the raw provider payload.
type LookupResponse struct {
	Product Response
	Raw     json.RawMessage
}

// GetProduct looks up a barcode, zero-padding it to 13 digits first. Unknown
// barcodes (valid:false or an error field) resolve to domain.ErrProductNotFound.
func (c *Client) GetProduct(ctx context.Context, barcode domain.Barcode) (*LookupResponse, error) {
	padded := barcode.PadTo13()

	target := fmt.Sprintf("%s/%s", c.endpoint, url.PathEscape(padded.String()))
	if c.apiKey != "" {
		target += "?apikey=" + url.QueryEscape(c.apiKey)
		log.Printf("[UPCDatabase] lookup for barcode: %s (with API key)", padded)
	} else {
		log.Printf("[UPCDatabase] lookup for barcode: %s (limited access mode)", padded)
	}

	reqURL := target
	if c.relayURL != "" {
		reqURL = c.relayURL + url.QueryEscape(target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Only simple headers here; anything else breaks the no-preflight contract.
	req.Header.Set("Accept", "application/json")

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
		log.Printf("[UPCDatabase] API error - status: %d", resp.StatusCode)
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}

	var decoded Response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if decoded.Error != "" || decoded.Invalid() {
		return nil, domain.ErrProductNotFound
	}

	return &LookupResponse{Product: decoded, Raw: body}, nil
}
