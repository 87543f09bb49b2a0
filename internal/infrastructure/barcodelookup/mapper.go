package barcodelookup

import (
	"strconv"

	"github.com/scanlens/backend/internal/domain"
)

// FormatProduct converts a BarcodeLookup product record to the normalized
// shape. Absent fields default to empty values so nothing undefined reaches
// the display layer. The function is pure: the same input always yields a
// structurally equal result.
func FormatProduct(p Product) *domain.NormalizedProduct {
	title := p.Title
	if title == "" {
		title = p.ProductName
	}
	if title == "" {
		title = domain.DefaultTitle
	}

	brand := p.Brand
	if brand == "" {
		brand = p.Manufacturer
	}

	upc := p.BarcodeNumber
	if upc == "" {
		upc = p.UPC
	}

	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	offers := make([]domain.StoreOffer, 0, len(p.Stores))
	for _, s := range p.Stores {
		offer := domain.StoreOffer{
			Merchant: s.Name,
			Currency: s.Currency,
			Link:     s.Link,
		}
		// Store prices arrive as display strings ("4.99"); keep 0 when unparseable.
		if price, err := strconv.ParseFloat(s.Price, 64); err == nil {
			offer.Price = price
		}
		offers = append(offers, offer)
	}

	reviews := make([]string, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, r.Review)
	}

	return &domain.NormalizedProduct{
		Title:       title,
		Brand:       brand,
		Description: p.Description,
		Category:    p.Category,
		Model:       p.Model,
		UPC:         upc,
		EAN:         p.EAN,
		ASIN:        p.ASIN,
		Images:      images,
		Price: domain.PriceRange{
			Lowest:   p.LowestRecordedPrice,
			Highest:  p.HighestRecordedPrice,
			Currency: currency,
		},
		Details: domain.ProductDetails{
			Color:     p.Color,
			Size:      p.Size,
			Weight:    p.Weight,
			Dimension: p.Dimension,
			Model:     p.Model,
			MPN:       p.MPN,
		},
		Offers:  offers,
		Rating:  p.Rating,
		Reviews: reviews,
	}
}
