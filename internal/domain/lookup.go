package domain

import "encoding/json"

// Status tags the outcome of a lookup.
type Status string

const (
	StatusFound    Status = "found"
	StatusNotFound Status = "not_found"
	StatusFailed   Status = "failed"
)

// ErrorKind classifies a failed lookup. The wire codes match the proxy's JSON
// error envelope so clients see one taxonomy regardless of which layer failed.
type ErrorKind string

const (
	KindInvalidInput       ErrorKind = "INVALID_INPUT"
	KindAPIError           ErrorKind = "API_ERROR"
	KindServiceUnavailable ErrorKind = "SERVICE_UNAVAILABLE"
	KindNetworkError       ErrorKind = "NETWORK_ERROR"
	KindInternalError      ErrorKind = "INTERNAL_ERROR"
)

// LookupRequest is constructed once per scan event and never mutated.
type LookupRequest struct {
	Barcode Barcode `json:"barcode"`
}

// LookupResult is the tagged union every adapter resolves to. Exactly one of
// the three shapes is populated, selected by Status:
//
//	Found    - Product and Raw
//	NotFound - Reason
//	Failed   - Kind, Message and (for upstream errors) HTTPStatus
type LookupResult struct {
	Status Status `json:"status"`

	Product *NormalizedProduct `json:"product,omitempty"`
	// Raw preserves the provider payload the product was extracted from.
	Raw json.RawMessage `json:"raw,omitempty"`

	Reason string `json:"reason,omitempty"`

	Kind       ErrorKind `json:"kind,omitempty"`
	Message    string    `json:"message,omitempty"`
	HTTPStatus int       `json:"httpStatus,omitempty"`
}

// Found builds a successful result from a normalized product and its raw payload.
func Found(product *NormalizedProduct, raw json.RawMessage) LookupResult {
	return LookupResult{Status: StatusFound, Product: product, Raw: raw}
}

// NotFoundResult builds a well-formed zero-results outcome.
func NotFoundResult(reason string) LookupResult {
	return LookupResult{Status: StatusNotFound, Reason: reason}
}

// Failed builds an error outcome. httpStatus is zero unless the failure came
// from an upstream HTTP response.
func Failed(kind ErrorKind, message string, httpStatus int) LookupResult {
	return LookupResult{Status: StatusFailed, Kind: kind, Message: message, HTTPStatus: httpStatus}
}

// OK reports whether the lookup produced a product.
func (r LookupResult) OK() bool {
	return r.Status == StatusFound
}
