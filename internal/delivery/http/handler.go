package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scanlens/backend/internal/domain"
	"github.com/scanlens/backend/internal/infrastructure/barcodelookup"
)

const serviceVersion = "1.0.0"

var endpointListing = gin.H{
	"health": "GET /health",
	"lookup": "GET /api/lookup/:barcode",
	"search": "GET /api/search?q=keyword&page=1",
}

// Handler holds dependencies for the proxy's HTTP handlers. The upstream
// client carries the API key; it never appears in responses.
type Handler struct {
	client *barcodelookup.Client
}

// NewHandler creates a new HTTP handler.
func NewHandler(client *barcodelookup.Client) *Handler {
	return &Handler{client: client}
}

// Info describes the service and its routes.
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "BarcodeLookup API Proxy Server",
		"version":   serviceVersion,
		"endpoints": endpointListing,
	})
}

// HealthCheck returns liveness without touching upstream.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// LookupBarcode proxies GET /api/lookup/:barcode to the upstream provider with
// the API key attached server-side.
func (h *Handler) LookupBarcode(c *gin.Context) {
	barcode := strings.TrimSpace(c.Param("barcode"))
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Barcode parameter is required",
			"code":    "INVALID_BARCODE",
		})
		return
	}

	resp, err := h.client.GetProduct(c.Request.Context(), domain.Barcode(barcode))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "No product found for this barcode",
				"code":    "NOT_FOUND",
			})
			return
		}
		h.upstreamFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          resp.Raw,
		"product":       resp.Products[0],
		"totalProducts": len(resp.Products),
	})
}

// SearchProducts proxies GET /api/search?q=&page= to the upstream search
// endpoint. An empty product list is still a 200.
func (h *Handler) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   `Query parameter "q" is required`,
			"code":    "INVALID_QUERY",
		})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	resp, err := h.client.Search(c.Request.Context(), query, page)
	if err != nil {
		h.upstreamFailure(c, err)
		return
	}

	products := resp.Products
	if products == nil {
		products = []barcodelookup.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          resp.Raw,
		"products":      products,
		"totalProducts": len(products),
	})
}

// NotFound answers unknown routes with the valid route listing.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success":            false,
		"error":              "Endpoint not found",
		"code":               "NOT_FOUND",
		"availableEndpoints": endpointListing,
	})
}

// upstreamFailure translates client errors into the proxy's error envelope:
// unreachable/timed-out upstream becomes 503, a non-2xx upstream status is
// relayed with API_ERROR, anything else is a 500.
func (h *Handler) upstreamFailure(c *gin.Context, err error) {
	var upstream *domain.UpstreamError
	switch {
	case errors.As(err, &upstream):
		c.JSON(upstream.StatusCode, gin.H{
			"success":    false,
			"error":      upstream.Body,
			"code":       "API_ERROR",
			"statusCode": upstream.StatusCode,
		})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "BarcodeLookup API is not responding",
			"code":    "SERVICE_UNAVAILABLE",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"code":    "INTERNAL_ERROR",
		})
	}
}
