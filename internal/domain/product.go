package domain

// DefaultTitle is used when an upstream record carries no usable product name.
const DefaultTitle = "Unknown Product"

// NormalizedProduct is the provider-agnostic product record produced by an
// adapter. Every field except Title may be empty; adapters must default absent
// upstream values to empty values rather than leaving them unset per-provider.
type NormalizedProduct struct {
	Title       string   `json:"title"`
	Brand       string   `json:"brand,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Model       string   `json:"model,omitempty"`
	UPC         string   `json:"upc,omitempty"`
	EAN         string   `json:"ean,omitempty"`
	ASIN        string   `json:"asin,omitempty"`
	Images      []string `json:"images"`

	Price   PriceRange     `json:"price"`
	Details ProductDetails `json:"details"`
	Offers  []StoreOffer   `json:"offers"`

	// IssuerCountry is only populated by providers that report the country
	// that issued the barcode (UPCDatabase.org).
	IssuerCountry string `json:"issuerCountry,omitempty"`

	Rating  string   `json:"rating,omitempty"`
	Reviews []string `json:"reviews,omitempty"`
}

// PriceRange holds the recorded price history for a product. Nil bounds mean
// the provider reported no price data.
type PriceRange struct {
	Lowest   *float64 `json:"lowest"`
	Highest  *float64 `json:"highest"`
	Currency string   `json:"currency"`
}

// ProductDetails groups the physical attributes providers report inconsistently.
type ProductDetails struct {
	Color     string `json:"color"`
	Size      string `json:"size"`
	Weight    string `json:"weight"`
	Dimension string `json:"dimension"`
	Model     string `json:"model"`
	MPN       string `json:"mpn,omitempty"`
}

// StoreOffer is a single retailer listing for a product.
type StoreOffer struct {
	Merchant  string  `json:"merchant"`
	Title     string  `json:"title,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Link      string  `json:"link,omitempty"`
	Condition string  `json:"condition,omitempty"`
	Updated   string  `json:"updated,omitempty"`
}
