package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned when a well-formed request matched zero products
	ErrProductNotFound = errors.New("no product found for this barcode")

	// ErrInvalidBarcode is returned when a barcode is empty after trimming
	ErrInvalidBarcode = errors.New("barcode cannot be empty")

	// ErrInvalidQuery is returned when a search query is empty after trimming
	ErrInvalidQuery = errors.New("search query cannot be empty")

	// ErrUpstreamUnavailable is returned when a provider is unreachable or timed out
	ErrUpstreamUnavailable = errors.New("provider API is not responding")

	// ErrSearchUnsupported is returned when the active provider has no keyword search
	ErrSearchUnsupported = errors.New("keyword search not supported by active provider")
)

// UpstreamError carries a non-2xx status returned by a provider so the proxy
// can relay it instead of collapsing everything into 500.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// FailureFrom maps a provider client error onto the adapter half of the error
// taxonomy: zero results become NotFound, non-2xx upstream statuses become
// API_ERROR with the relayed status, and everything else (DNS, timeout,
// malformed JSON) is a NETWORK_ERROR.
func FailureFrom(err error) LookupResult {
	if errors.Is(err, ErrProductNotFound) {
		return NotFoundResult(ErrProductNotFound.Error())
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return Failed(KindAPIError, upstream.Error(), upstream.StatusCode)
	}
	return Failed(KindNetworkError, err.Error(), 0)
}
