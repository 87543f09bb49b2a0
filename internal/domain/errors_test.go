package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureFrom(t *testing.T) {
	t.Run("not found becomes NotFound result", func(t *testing.T) {
		result := FailureFrom(fmt.Errorf("lookup: %w", ErrProductNotFound))

		assert.Equal(t, StatusNotFound, result.Status)
		assert.NotEmpty(t, result.Reason)
		assert.Nil(t, result.Product)
	})

	t.Run("upstream status becomes API_ERROR with relayed status", func(t *testing.T) {
		result := FailureFrom(&UpstreamError{StatusCode: 429, Body: "too many requests"})

		assert.Equal(t, StatusFailed, result.Status)
		assert.Equal(t, KindAPIError, result.Kind)
		assert.Equal(t, 429, result.HTTPStatus)
	})

	t.Run("wrapped upstream status still classified", func(t *testing.T) {
		wrapped := fmt.Errorf("fetch: %w", &UpstreamError{StatusCode: 500})
		result := FailureFrom(wrapped)

		assert.Equal(t, KindAPIError, result.Kind)
		assert.Equal(t, 500, result.HTTPStatus)
	})

	t.Run("transport failure becomes NETWORK_ERROR", func(t *testing.T) {
		result := FailureFrom(errors.New("dial tcp: connection refused"))

		assert.Equal(t, StatusFailed, result.Status)
		assert.Equal(t, KindNetworkError, result.Kind)
		assert.Equal(t, 0, result.HTTPStatus)
	})
}

func TestUpstreamErrorMessage(t *testing.T) {
	assert.Equal(t, "provider returned status 502", (&UpstreamError{StatusCode: 502}).Error())
	assert.Equal(t, "provider returned status 400: bad barcode", (&UpstreamError{StatusCode: 400, Body: "bad barcode"}).Error())
}
